package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, WithArchive, WithoutReport).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Reference.Dir
	if s != "" {
		res = append(res, OptReferenceDir(s))
	}
	s = c.Reference.TaxonFile
	if s != "" {
		res = append(res, OptReferenceTaxonFile(s))
	}
	s = c.Reference.DescriptionFile
	if s != "" {
		res = append(res, OptReferenceDescriptionFile(s))
	}
	s = c.Reference.VernacularFile
	if s != "" {
		res = append(res, OptReferenceVernacularFile(s))
	}

	s = c.GBIF.URL
	if s != "" {
		res = append(res, OptGBIFURL(s))
	}
	s = c.GBIF.Kingdom
	if s != "" {
		res = append(res, OptGBIFKingdom(s))
	}
	i = c.GBIF.PageLimit
	if i > 0 {
		res = append(res, OptGBIFPageLimit(i))
	}
	i = c.GBIF.ResultCap
	if i > 0 {
		res = append(res, OptGBIFResultCap(i))
	}
	i = c.GBIF.PageDelayMs
	if i > 0 {
		res = append(res, OptGBIFPageDelayMs(i))
	}
	i = c.GBIF.TimeoutSec
	if i > 0 {
		res = append(res, OptGBIFTimeoutSec(i))
	}
	i = c.GBIF.RetryAttempts
	if i > 0 {
		res = append(res, OptGBIFRetryAttempts(i))
	}

	s = c.Cache.Backend
	if s != "" {
		res = append(res, OptCacheBackend(s))
	}
	s = c.Cache.RedisAddr
	if s != "" {
		res = append(res, OptCacheRedisAddr(s))
	}
	s = c.Cache.RedisPassword
	if s != "" {
		res = append(res, OptCacheRedisPassword(s))
	}
	i = c.Cache.RedisDB
	if i > 0 {
		res = append(res, OptCacheRedisDB(i))
	}

	s = c.Report.Model
	if s != "" {
		res = append(res, OptReportModel(s))
	}
	s = c.Report.APIKey
	if s != "" {
		res = append(res, OptReportAPIKey(s))
	}
	i = c.Report.MetadataLimit
	if i > 0 {
		res = append(res, OptReportMetadataLimit(i))
	}

	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.MaxSpecies
	if i > 0 {
		res = append(res, OptMaxSpecies(i))
	}
	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isNotNegative(name string, i int) bool {
	res := i >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %d", name, i)
	}
	return res
}

func isWithinMax(name string, i, max int) bool {
	res := i <= max
	if !res {
		gn.Warn("<em>%s</em> cannot exceed %d, ignoring %d", name, max, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Cache.Backend": {"memory": s, "sqlite": s, "redis": s},
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			name, val, strings.Join(lines, "\n"),
		)
		return false
	}
}
