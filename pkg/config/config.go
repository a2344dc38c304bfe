// Package config provides configuration management for GNflora.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Reference: dir, taxon_file, description_file, vernacular_file
//   - GBIF: url, kingdom, page_limit, result_cap, page_delay_ms, timeout_sec,
//     retry_attempts
//   - Cache: backend, redis_addr, redis_password, redis_db
//   - Report: model, api_key, metadata_limit
//   - Database: host, port, user, password, database, ssl_mode
//   - Log: level, format, destination
//   - General: max_species, jobs_number
//
// Runtime-only fields (CLI flags only):
//   - WithArchive, WithoutReport (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNFLORA_ prefix with underscores for nesting:
//
//	GNFLORA_REFERENCE_DIR=/data/eflora
//	GNFLORA_GBIF_RESULT_CAP=2000
//	GNFLORA_CACHE_BACKEND=sqlite
//	GNFLORA_REPORT_API_KEY=...
//	GNFLORA_LOG_LEVEL=info
//
// GEMINI_API_KEY is also honored when report.api_key is empty.
package config

import (
	"runtime"
)

// Config represents the complete GNflora configuration.
type Config struct {
	// Reference locates e-Flora files used to build the reference index.
	Reference ReferenceConfig `mapstructure:"reference" yaml:"reference"`

	// GBIF contains settings for the GBIF name matching and occurrence APIs.
	GBIF GBIFConfig `mapstructure:"gbif" yaml:"gbif"`

	// Cache determines where aggregated occurrence results are kept.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache"`

	// Report contains settings of the natural-language report generator.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	// Database contains PostgreSQL settings of the optional run archive.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// MaxSpecies is the number of the most observed species that are
	// compared against the reference index.
	MaxSpecies int `mapstructure:"max_species" yaml:"max_species"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`

	// WithArchive is true if results of a run should be saved to
	// the PostgreSQL archive.
	WithArchive bool `mapstructure:"-" yaml:"-"`

	// WithoutReport is true if the report generator should not be called.
	WithoutReport bool `mapstructure:"-" yaml:"-"`
}

// ReferenceConfig describes e-Flora Darwin Core files.
type ReferenceConfig struct {
	// Dir is a directory with reference files. If empty, the
	// ~/.local/share/gnflora/eflora directory is used.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// TaxonFile is a tab-separated file with 'id' and 'scientificName'
	// columns.
	TaxonFile string `mapstructure:"taxon_file" yaml:"taxon_file"`

	// DescriptionFile is a tab-separated file with 'id', 'description' and
	// 'type' columns.
	DescriptionFile string `mapstructure:"description_file" yaml:"description_file"`

	// VernacularFile is a tab-separated file where the first column is
	// taxon ID and the second one is a vernacular name.
	VernacularFile string `mapstructure:"vernacular_file" yaml:"vernacular_file"`
}

// GBIFConfig contains settings for GBIF API.
type GBIFConfig struct {
	// URL is the base URL of GBIF API.
	URL string `mapstructure:"url" yaml:"url"`

	// Kingdom restricts name matching to one kingdom of the GBIF backbone.
	Kingdom string `mapstructure:"kingdom" yaml:"kingdom"`

	// PageLimit is the number of occurrence records requested per page.
	// GBIF does not return more than 300 records per page.
	PageLimit int `mapstructure:"page_limit" yaml:"page_limit"`

	// ResultCap is the maximum number of occurrence records collected
	// for one search.
	ResultCap int `mapstructure:"result_cap" yaml:"result_cap"`

	// PageDelayMs is a delay between page requests in milliseconds.
	PageDelayMs int `mapstructure:"page_delay_ms" yaml:"page_delay_ms"`

	// TimeoutSec is the timeout of one HTTP request in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// RetryAttempts is the number of attempts for name matching.
	// One attempt means no retries.
	RetryAttempts int `mapstructure:"retry_attempts" yaml:"retry_attempts"`
}

// CacheConfig determines the occurrence cache backend.
type CacheConfig struct {
	// Backend can be 'memory', 'sqlite' or 'redis'.
	Backend string `mapstructure:"backend" yaml:"backend"`

	// RedisAddr is host:port of Redis server.
	RedisAddr string `mapstructure:"redis_addr" yaml:"redis_addr"`

	// RedisPassword is an optional password for Redis server.
	RedisPassword string `mapstructure:"redis_password" yaml:"redis_password"`

	// RedisDB is the Redis database number.
	RedisDB int `mapstructure:"redis_db" yaml:"redis_db"`
}

// ReportConfig contains settings for Gemini-based reports.
type ReportConfig struct {
	// Model is the name of Gemini model.
	Model string `mapstructure:"model" yaml:"model"`

	// APIKey is Gemini API key. If empty, GEMINI_API_KEY is used.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// MetadataLimit is the number of the most observed species whose
	// occurrence counts are included into report context.
	MetadataLimit int `mapstructure:"metadata_limit" yaml:"metadata_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Reference: ReferenceConfig{
			TaxonFile:       "taxon.txt",
			DescriptionFile: "description.txt",
			VernacularFile:  "vernacularname.txt",
		},
		GBIF: GBIFConfig{
			URL:           "https://api.gbif.org/v1/",
			Kingdom:       "Plantae",
			PageLimit:     300,
			ResultCap:     1000,
			PageDelayMs:   100,
			TimeoutSec:    30,
			RetryAttempts: 1,
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
		},
		Report: ReportConfig{
			Model:         "gemini-2.5-flash",
			MetadataLimit: 10,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "gnflora",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		MaxSpecies: 20,
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
