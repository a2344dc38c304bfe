/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/internal/iofs"
	"github.com/gnames/gnflora/internal/iologger"
	app "github.com/gnames/gnflora/pkg"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnflora",
		Short:   "GNflora finds plant species near a location and describes them",
		Long: `GNflora collects GBIF occurrence records of a taxon around a
geographic point, ranks species by the number of records, matches them
against a local e-Flora Darwin Core archive and asks Gemini for a field
guide or a specimen identification.

Commands:
  - analyze: full pipeline with a report
  - species: ranked species list from GBIF only
  - index: statistics and lookups of the e-Flora reference index
  - archive: PostgreSQL archive of analysis runs
  - config: show effective configuration

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNFLORA_*), also read from .env file
  3. Config file (~/.config/gnflora/config.yaml)
  4. Built-in defaults

Examples of environment variables:
  GNFLORA_REFERENCE_DIR      directory with e-Flora files
  GNFLORA_CACHE_BACKEND      memory, sqlite or redis
  GNFLORA_GBIF_RESULT_CAP    maximum number of occurrence records
  GEMINI_API_KEY             Gemini API key`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnflora version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnflora")

	rootCmd.AddCommand(
		getAnalyzeCmd(),
		getSpeciesCmd(),
		getIndexCmd(),
		getArchiveCmd(),
		getConfigCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	loadDotEnv()

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, the log of the session
	// continues the one started above.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

// loadDotEnv reads .env from the working directory, so secrets like
// GEMINI_API_KEY do not have to be exported. Existing environment
// variables take precedence.
func loadDotEnv() {
	err := godotenv.Load()
	if err == nil {
		slog.Info("Environment variables loaded from .env")
		return
	}
	if !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Cannot read .env file", "error", err)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute runs the root command.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNFLORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Reference files
	v.BindEnv("reference.dir", "GNFLORA_REFERENCE_DIR")
	v.BindEnv("reference.taxon_file", "GNFLORA_REFERENCE_TAXON_FILE")
	v.BindEnv("reference.description_file", "GNFLORA_REFERENCE_DESCRIPTION_FILE")
	v.BindEnv("reference.vernacular_file", "GNFLORA_REFERENCE_VERNACULAR_FILE")

	// GBIF
	v.BindEnv("gbif.url", "GNFLORA_GBIF_URL")
	v.BindEnv("gbif.kingdom", "GNFLORA_GBIF_KINGDOM")
	v.BindEnv("gbif.page_limit", "GNFLORA_GBIF_PAGE_LIMIT")
	v.BindEnv("gbif.result_cap", "GNFLORA_GBIF_RESULT_CAP")
	v.BindEnv("gbif.page_delay_ms", "GNFLORA_GBIF_PAGE_DELAY_MS")
	v.BindEnv("gbif.timeout_sec", "GNFLORA_GBIF_TIMEOUT_SEC")
	v.BindEnv("gbif.retry_attempts", "GNFLORA_GBIF_RETRY_ATTEMPTS")

	// Cache
	v.BindEnv("cache.backend", "GNFLORA_CACHE_BACKEND")
	v.BindEnv("cache.redis_addr", "GNFLORA_CACHE_REDIS_ADDR")
	v.BindEnv("cache.redis_password", "GNFLORA_CACHE_REDIS_PASSWORD")
	v.BindEnv("cache.redis_db", "GNFLORA_CACHE_REDIS_DB")

	// Report
	v.BindEnv("report.model", "GNFLORA_REPORT_MODEL")
	v.BindEnv("report.api_key", "GNFLORA_REPORT_API_KEY")
	v.BindEnv("report.metadata_limit", "GNFLORA_REPORT_METADATA_LIMIT")

	// Database configuration
	v.BindEnv("database.host", "GNFLORA_DATABASE_HOST")
	v.BindEnv("database.port", "GNFLORA_DATABASE_PORT")
	v.BindEnv("database.user", "GNFLORA_DATABASE_USER")
	v.BindEnv("database.password", "GNFLORA_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNFLORA_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNFLORA_DATABASE_SSL_MODE")

	// Log configuration
	v.BindEnv("log.level", "GNFLORA_LOG_LEVEL")
	v.BindEnv("log.format", "GNFLORA_LOG_FORMAT")
	v.BindEnv("log.destination", "GNFLORA_LOG_DESTINATION")

	// General configuration
	v.BindEnv("max_species", "GNFLORA_MAX_SPECIES")
	v.BindEnv("jobs_number", "GNFLORA_JOBS_NUMBER")

	v.AutomaticEnv()
}
