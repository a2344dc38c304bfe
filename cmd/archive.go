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
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/internal/ioarchive"
	"github.com/spf13/cobra"
)

// getArchiveCmd returns the archive command with its subcommands.
func getArchiveCmd() *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Manage PostgreSQL archive of analysis runs",
		Long: `Manage PostgreSQL archive where 'gnflora analyze --archive' saves
queries, ranked species, match results and reports.

Connection settings are in the database section of config.yaml or in
GNFLORA_DATABASE_* environment variables.`,
	}
	archiveCmd.AddCommand(getArchiveInitCmd())
	return archiveCmd
}

func getArchiveInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or update archive tables",
		Long: `Create or update archive tables using GORM AutoMigrate.
The command is idempotent, existing data is kept.

Examples:
  gnflora archive init`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runArchiveInit()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
}

func runArchiveInit() error {
	ctx := context.Background()

	arc, err := ioarchive.Connect(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer arc.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	if err = arc.Migrate(ctx); err != nil {
		return err
	}
	gn.Info("Archive tables are ready")
	return nil
}
