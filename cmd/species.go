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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/analysis"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/spf13/cobra"
)

// getSpeciesCmd returns the species command.
func getSpeciesCmd() *cobra.Command {
	var (
		qf    queryFlags
		limit int
	)

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "List species of a taxon observed near a location",
		Long: `Resolve a taxon with GBIF and list species with occurrence records
near a location, ranked by the number of records. The reference index
and the report generator are not used.

Examples:
  gnflora species -t Quercus --lat 50.08 --lon 14.42 -r 20
  gnflora species -t Orchidaceae --lat 43.7 --lon 7.26 -r 5 -l 0`,
		Aliases: []string{"s"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSpecies(cmd, &qf, limit)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addQueryFlags(speciesCmd, &qf)
	speciesCmd.Flags().IntVarP(&limit, "limit", "l", 50,
		"number of species to print, 0 prints all")

	return speciesCmd
}

func runSpecies(cmd *cobra.Command, qf *queryFlags, limit int) error {
	ctx := context.Background()

	q, err := qf.query()
	if err != nil {
		return err
	}

	occ, closeCache, err := newOccurrenceClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	res := occ.SpeciesList(ctx, q)
	if res.ResolveErr != nil {
		gn.PrintErrorMessage(res.ResolveErr)
	}
	if len(res.Species) == 0 {
		return analysis.NoOccurrencesError(q)
	}

	if res.Completion == flora.Capped {
		gn.Warn("Only the first <em>%s</em> records were used, "+
			"increase gbif.result_cap to collect more",
			humanize.Comma(int64(res.Records)))
	}
	printSpecies(cmd.OutOrStdout(), res.Species, limit)
	return nil
}
