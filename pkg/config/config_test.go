package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnflora"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnflora"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnflora", "logs"),
		},
		{
			msg: "reference dir",
			fn:  config.ReferenceDir,
			res: filepath.Join(tempHome, ".local", "share", "gnflora", "eflora"),
		},
		{
			msg: "cache db",
			fn:  config.CacheDBPath,
			res: filepath.Join(tempHome, ".cache", "gnflora", "occurrences.sqlite"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "taxon.txt", cfg.Reference.TaxonFile)
		assert.Equal(t, "description.txt", cfg.Reference.DescriptionFile)
		assert.Equal(t, "vernacularname.txt", cfg.Reference.VernacularFile)

		assert.Equal(t, "https://api.gbif.org/v1/", cfg.GBIF.URL)
		assert.Equal(t, "Plantae", cfg.GBIF.Kingdom)
		assert.Equal(t, 300, cfg.GBIF.PageLimit)
		assert.Equal(t, 1000, cfg.GBIF.ResultCap)
		assert.Equal(t, 100, cfg.GBIF.PageDelayMs)
		assert.Equal(t, 1, cfg.GBIF.RetryAttempts)

		assert.Equal(t, "memory", cfg.Cache.Backend)
		assert.Equal(t, "gemini-2.5-flash", cfg.Report.Model)
		assert.Equal(t, 10, cfg.Report.MetadataLimit)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "gnflora", cfg.Database.Database)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, 20, cfg.MaxSpecies)
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
		assert.False(t, cfg.WithArchive)
		assert.False(t, cfg.WithoutReport)
	})
}

func TestReferencePaths(t *testing.T) {
	t.Run("uses home reference dir by default", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptHomeDir("/home/botanist")})
		taxon, desc, vern := cfg.ReferencePaths()
		dir := config.ReferenceDir("/home/botanist")
		assert.Equal(t, filepath.Join(dir, "taxon.txt"), taxon)
		assert.Equal(t, filepath.Join(dir, "description.txt"), desc)
		assert.Equal(t, filepath.Join(dir, "vernacularname.txt"), vern)
	})

	t.Run("explicit dir and absolute file", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptReferenceDir("/data/eflora"),
			config.OptReferenceVernacularFile("/other/vern.tsv"),
		})
		taxon, _, vern := cfg.ReferencePaths()
		assert.Equal(t, "/data/eflora/taxon.txt", taxon)
		assert.Equal(t, "/other/vern.tsv", vern)
	})
}

func TestOptionGBIFURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "adds trailing slash",
			input:    "http://localhost:8080/v1",
			expected: "http://localhost:8080/v1/",
		},
		{
			name:     "keeps trailing slash",
			input:    "http://localhost:8080/v1/",
			expected: "http://localhost:8080/v1/",
		},
		{
			name:     "ignores empty string",
			input:    "  ",
			expected: "https://api.gbif.org/v1/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptGBIFURL(tt.input)})
			assert.Equal(t, tt.expected, cfg.GBIF.URL)
		})
	}
}

func TestOptionGBIFPageLimit(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid page limit",
			input:    100,
			expected: 100,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 300,
		},
		{
			name:     "ignores values above GBIF maximum",
			input:    500,
			expected: 300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptGBIFPageLimit(tt.input)})
			assert.Equal(t, tt.expected, cfg.GBIF.PageLimit)
		})
	}
}

func TestOptionCacheBackend(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets sqlite",
			input:    "sqlite",
			expected: "sqlite",
		},
		{
			name:     "sets redis",
			input:    "redis",
			expected: "redis",
		},
		{
			name:     "normalizes to lowercase",
			input:    "SQLite",
			expected: "sqlite",
		},
		{
			name:     "ignores invalid value",
			input:    "memcached",
			expected: "memory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptCacheBackend(tt.input)})
			assert.Equal(t, tt.expected, cfg.Cache.Backend)
		})
	}
}

func TestOptionCacheRedisDB(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptCacheRedisDB(3)})
	assert.Equal(t, 3, cfg.Cache.RedisDB)

	cfg.Update([]config.Option{config.OptCacheRedisDB(-1)})
	assert.Equal(t, 3, cfg.Cache.RedisDB)

	cfg.Update([]config.Option{config.OptCacheRedisDB(0)})
	assert.Equal(t, 0, cfg.Cache.RedisDB)
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes to lowercase",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionMaxSpecies(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid number",
			input:    5,
			expected: 5,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 20,
		},
		{
			name:     "ignores negative",
			input:    -3,
			expected: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptMaxSpecies(tt.input)})
			assert.Equal(t, tt.expected, cfg.MaxSpecies)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptGBIFResultCap(2000),
			config.OptGBIFKingdom("Fungi"),
			config.OptCacheBackend("sqlite"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		}

		cfg.Update(opts)

		assert.Equal(t, 2000, cfg.GBIF.ResultCap)
		assert.Equal(t, "Fungi", cfg.GBIF.Kingdom)
		assert.Equal(t, "sqlite", cfg.Cache.Backend)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		// Unchanged fields keep defaults
		assert.Equal(t, 300, cfg.GBIF.PageLimit)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptReportModel("first-model"),
			config.OptReportModel("second-model"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second-model", cfg.Report.Model)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptReferenceDir("/data/eflora"),
			config.OptGBIFURL("http://localhost/v1/"),
			config.OptGBIFKingdom("Fungi"),
			config.OptGBIFPageLimit(50),
			config.OptGBIFResultCap(500),
			config.OptGBIFPageDelayMs(250),
			config.OptGBIFTimeoutSec(5),
			config.OptGBIFRetryAttempts(3),
			config.OptCacheBackend("redis"),
			config.OptCacheRedisAddr("redis:6379"),
			config.OptCacheRedisDB(2),
			config.OptReportModel("gemini-2.5-pro"),
			config.OptReportAPIKey("secret"),
			config.OptDatabaseHost("db.example.org"),
			config.OptDatabaseSSLMode("require"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptMaxSpecies(7),
			config.OptJobsNumber(8),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Reference, newCfg.Reference)
		assert.Equal(t, original.GBIF, newCfg.GBIF)
		assert.Equal(t, original.Cache, newCfg.Cache)
		assert.Equal(t, original.Report, newCfg.Report)
		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.MaxSpecies, newCfg.MaxSpecies)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptWithArchive(true),
			config.OptWithoutReport(true),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.False(t, newCfg.WithArchive)
		assert.False(t, newCfg.WithoutReport)
	})
}
