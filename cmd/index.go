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
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnflora/internal/ioreference"
	"github.com/gnames/gnflora/pkg/matcher"
	"github.com/gnames/gnflora/pkg/names"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getIndexCmd returns the index command.
func getIndexCmd() *cobra.Command {
	var lookup, refDir string

	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Build the e-Flora reference index and show its statistics",
		Long: `Build the reference index from e-Flora Darwin Core files and print
statistics about loaded taxa, descriptions and vernacular names.

With --lookup, print the description the analysis would use for one name.
Only the first two words of the name are used for the lookup.

Reference files are located in reference.dir of config.yaml
(default ~/.local/share/gnflora/eflora).

Examples:
  gnflora index
  gnflora index --lookup "Quercus robur L."`,
		Aliases: []string{"i"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIndex(cmd, refDir, lookup)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	indexCmd.Flags().StringVarP(&lookup, "lookup", "k", "",
		"scientific name to look up")
	addReferenceFlag(indexCmd, &refDir)

	return indexCmd
}

func runIndex(cmd *cobra.Command, refDir, lookup string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()
	cfg.Update(referenceOpts(cmd, refDir))

	start := time.Now()
	idx, err := ioreference.Build(ctx, cfg)
	if err != nil {
		return err
	}
	st := idx.Stats()
	gn.Info("Reference index was built in %s",
		gnfmt.TimeString(time.Since(start).Seconds()))

	if lookup == "" {
		fmt.Fprintf(out, "Taxa:                    %s\n", humanize.Comma(int64(st.Taxa)))
		fmt.Fprintf(out, "Dropped duplicates:      %s\n", humanize.Comma(int64(st.Duplicates)))
		fmt.Fprintf(out, "Rows without name:       %s\n", humanize.Comma(int64(st.SkippedEmpty)))
		fmt.Fprintf(out, "With descriptions:       %s\n", humanize.Comma(int64(st.WithDescriptions)))
		fmt.Fprintf(out, "With vernacular names:   %s\n", humanize.Comma(int64(st.WithVernaculars)))
		fmt.Fprintf(out, "Not binomials:           %s\n", humanize.Comma(int64(st.NonBinomial)))
		return nil
	}

	key := names.Normalize(lookup)
	entry, ok := idx.Lookup(key)
	if !ok {
		gn.Warn("<em>%s</em> is not found in index", key)
		return nil
	}
	desc, ok := matcher.Extract(entry)
	if !ok {
		gn.Warn("<em>%s</em> has no relevant sections", key)
		return nil
	}
	fmt.Fprintln(out, desc)
	return nil
}
