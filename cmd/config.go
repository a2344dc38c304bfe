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
	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const mask = "********"

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Print configuration after applying config.yaml, environment variables
and defaults. Passwords and API keys are masked.

Examples:
  gnflora config
  GNFLORA_CACHE_BACKEND=sqlite gnflora config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gn.Info("Config file: <em>%s</em>", config.ConfigFilePath(cfg.HomeDir))
			out, err := configYAML(cfg)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// configYAML renders persistent config fields with secrets masked.
func configYAML(c *config.Config) ([]byte, error) {
	res := *c
	if res.Report.APIKey != "" {
		res.Report.APIKey = mask
	}
	if res.Database.Password != "" {
		res.Database.Password = mask
	}
	if res.Cache.RedisPassword != "" {
		res.Cache.RedisPassword = mask
	}
	return yaml.Marshal(&res)
}
