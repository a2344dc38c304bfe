package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptReferenceDir sets the directory with e-Flora files.
func OptReferenceDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Dir", s) {
			c.Reference.Dir = s
		}
	}
}

// OptReferenceTaxonFile sets the name of taxon file.
func OptReferenceTaxonFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Taxon File", s) {
			c.Reference.TaxonFile = s
		}
	}
}

// OptReferenceDescriptionFile sets the name of description file.
func OptReferenceDescriptionFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Description File", s) {
			c.Reference.DescriptionFile = s
		}
	}
}

// OptReferenceVernacularFile sets the name of vernacular names file.
func OptReferenceVernacularFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Vernacular File", s) {
			c.Reference.VernacularFile = s
		}
	}
}

// OptGBIFURL sets the base URL of GBIF API. A trailing slash is added
// if missing.
func OptGBIFURL(s string) Option {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return func(c *Config) {
		if isValidString("GBIF URL", s) {
			c.GBIF.URL = s
		}
	}
}

// OptGBIFKingdom sets the kingdom used to restrict GBIF name matching.
func OptGBIFKingdom(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("GBIF Kingdom", s) {
			c.GBIF.Kingdom = s
		}
	}
}

// OptGBIFPageLimit sets the number of records per page.
// GBIF does not allow more than 300 records per page.
func OptGBIFPageLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("GBIF Page Limit", i) && isWithinMax("GBIF Page Limit", i, 300) {
			c.GBIF.PageLimit = i
		}
	}
}

// OptGBIFResultCap sets the maximum number of records collected per search.
func OptGBIFResultCap(i int) Option {
	return func(c *Config) {
		if isValidInt("GBIF Result Cap", i) {
			c.GBIF.ResultCap = i
		}
	}
}

// OptGBIFPageDelayMs sets the delay between page requests in milliseconds.
func OptGBIFPageDelayMs(i int) Option {
	return func(c *Config) {
		if isValidInt("GBIF Page Delay", i) {
			c.GBIF.PageDelayMs = i
		}
	}
}

// OptGBIFTimeoutSec sets HTTP timeout in seconds.
func OptGBIFTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("GBIF Timeout", i) {
			c.GBIF.TimeoutSec = i
		}
	}
}

// OptGBIFRetryAttempts sets the number of attempts for name matching.
func OptGBIFRetryAttempts(i int) Option {
	return func(c *Config) {
		if isValidInt("GBIF Retry Attempts", i) {
			c.GBIF.RetryAttempts = i
		}
	}
}

// OptCacheBackend sets the occurrence cache backend.
// Valid values: "memory", "sqlite", "redis".
func OptCacheBackend(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Cache.Backend", s) {
			c.Cache.Backend = s
		}
	}
}

// OptCacheRedisAddr sets host:port of Redis server.
func OptCacheRedisAddr(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Redis Address", s) {
			c.Cache.RedisAddr = s
		}
	}
}

// OptCacheRedisPassword sets the Redis password.
func OptCacheRedisPassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Redis Password", s) {
			c.Cache.RedisPassword = s
		}
	}
}

// OptCacheRedisDB sets the Redis database number. Zero is a valid value.
func OptCacheRedisDB(i int) Option {
	return func(c *Config) {
		if isNotNegative("Redis DB", i) {
			c.Cache.RedisDB = i
		}
	}
}

// OptReportModel sets the name of Gemini model.
func OptReportModel(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report Model", s) {
			c.Report.Model = s
		}
	}
}

// OptReportAPIKey sets Gemini API key.
func OptReportAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report API Key", s) {
			c.Report.APIKey = s
		}
	}
}

// OptReportMetadataLimit sets how many of the most observed species are
// listed with their occurrence counts in report context.
func OptReportMetadataLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("Report Metadata Limit", i) {
			c.Report.MetadataLimit = i
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptMaxSpecies sets how many of the most observed species are matched
// against the reference index.
func OptMaxSpecies(i int) Option {
	return func(c *Config) {
		if isValidInt("Max Species", i) {
			c.MaxSpecies = i
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

// OptWithArchive sets saving of run results to PostgreSQL archive.
// Runtime-only field - not in ToOptions().
func OptWithArchive(b bool) Option {
	return func(c *Config) {
		c.WithArchive = b
	}
}

// OptWithoutReport disables the report generation.
// Runtime-only field - not in ToOptions().
func OptWithoutReport(b bool) Option {
	return func(c *Config) {
		c.WithoutReport = b
	}
}
