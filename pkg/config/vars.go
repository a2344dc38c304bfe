package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnflora"

	// KmPerDegreeLat is an approximate length of one degree of latitude.
	KmPerDegreeLat = 111.32
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnflora by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnflora by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnflora/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ReferenceDir returns the default directory for e-Flora files.
// Returns ~/.local/share/gnflora/eflora by default.
func ReferenceDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "eflora")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnflora/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CacheDBPath returns the path to SQLite file of the persistent
// occurrence cache.
func CacheDBPath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "occurrences.sqlite")
}

// ReferencePaths returns paths to taxon, description and vernacular files.
// Relative file names are resolved against Reference.Dir, or against
// ReferenceDir(HomeDir) if Reference.Dir is empty.
func (c *Config) ReferencePaths() (taxon, description, vernacular string) {
	dir := c.Reference.Dir
	if dir == "" && c.HomeDir != "" {
		dir = ReferenceDir(c.HomeDir)
	}
	join := func(f string) string {
		if filepath.IsAbs(f) || dir == "" {
			return f
		}
		return filepath.Join(dir, f)
	}
	return join(c.Reference.TaxonFile),
		join(c.Reference.DescriptionFile),
		join(c.Reference.VernacularFile)
}
