// Package iofs prepares file system layout of gnflora: config, cache, log
// and reference directories, and the default config file.
package iofs

import (
	_ "embed"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnsys"
)

// ConfigYAML is the default config.yaml with documented settings.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates gnflora directories under homeDir if they do not
// exist. Existing directories and their content are not touched.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
		config.ReferenceDir(homeDir),
	}
	for _, v := range dirs {
		if err := gnsys.MakeDir(v); err != nil {
			return CreateDirError(v, err)
		}
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless a config file
// already exists. User edits are never overwritten.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return CopyFileError(path, err)
	}

	if err = os.WriteFile(path, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(path, err)
	}
	slog.Info("Default config file created", "path", path)
	return nil
}

// ReadFile reads a whole file, for example a specimen description given
// by a path.
func ReadFile(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}
