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
	"io"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/internal/ioarchive"
	"github.com/gnames/gnflora/internal/iogemini"
	"github.com/gnames/gnflora/internal/ioreference"
	"github.com/gnames/gnflora/pkg/analysis"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/spf13/cobra"
)

// getAnalyzeCmd returns the analyze command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getAnalyzeCmd() *cobra.Command {
	var (
		qf         queryFlags
		maxSpecies int
		noReport   bool
		archive    bool
		refDir     string
	)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Find species near a location and create a report",
		Long: `Find species of a taxon near a location and describe them.

This command:
  1. Builds the reference index from e-Flora files
  2. Resolves the taxon name with GBIF backbone taxonomy
  3. Collects GBIF occurrence records within the radius
  4. Ranks species by the number of records
  5. Matches the top species with e-Flora descriptions
  6. Asks Gemini for a field guide, or for an identification if
     a specimen description is given

Occurrence results are cached by taxon, location and radius.

Examples:
  gnflora analyze -t Quercus --lat 50.08 --lon 14.42 -r 20
  gnflora analyze -t Rosaceae --lat 50.08 --lon 14.42 \
    -q "shrub with white flowers and thorny stems"
  gnflora analyze -t Pinaceae --lat 46.5 --lon 11.3 --no-report --archive`,
		Aliases: []string{"a"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runAnalyze(cmd, &qf, refDir, maxSpecies, noReport, archive)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addQueryFlags(analyzeCmd, &qf)
	addSpecimenFlags(analyzeCmd, &qf)
	addReferenceFlag(analyzeCmd, &refDir)
	analyzeCmd.Flags().IntVarP(&maxSpecies, "max-species", "m", 0,
		"number of top species to match (default from config)")
	analyzeCmd.Flags().BoolVar(&noReport, "no-report", false,
		"do not call Gemini, print collected descriptions")
	analyzeCmd.Flags().BoolVar(&archive, "archive", false,
		"save results to PostgreSQL archive")

	return analyzeCmd
}

func runAnalyze(
	cmd *cobra.Command,
	qf *queryFlags,
	refDir string,
	maxSpecies int,
	noReport, archive bool,
) error {
	ctx := context.Background()

	analyzeOpts := referenceOpts(cmd, refDir)
	if cmd.Flags().Changed("max-species") {
		analyzeOpts = append(analyzeOpts, config.OptMaxSpecies(maxSpecies))
	}
	analyzeOpts = append(analyzeOpts,
		config.OptWithoutReport(noReport),
		config.OptWithArchive(archive),
	)
	cfg.Update(analyzeOpts)

	q, err := qf.query()
	if err != nil {
		return err
	}

	gn.Info("Building reference index...")
	idx, err := ioreference.Build(ctx, cfg)
	if err != nil {
		return err
	}
	st := idx.Stats()
	gn.Info("Reference index has <em>%d</em> taxa", st.Taxa)

	occ, closeCache, err := newOccurrenceClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	var anOpts []analysis.Option
	if !cfg.WithoutReport {
		rep, err := iogemini.New(ctx, cfg)
		if err != nil {
			return err
		}
		anOpts = append(anOpts, analysis.OptReport(rep))
	}
	if cfg.WithArchive {
		arc, err := ioarchive.Connect(ctx, &cfg.Database)
		if err != nil {
			return err
		}
		defer arc.Close()
		anOpts = append(anOpts, analysis.OptArchive(arc))
	}

	an := analysis.New(cfg, occ, idx, anOpts...)
	res, err := an.Run(ctx, q)
	out := cmd.OutOrStdout()
	if len(res.Search.Species) > 0 {
		printSpecies(out, res.Search.Species, cfg.MaxSpecies)
	}
	if err != nil {
		return err
	}

	printAnalysis(out, res)
	return nil
}

func printAnalysis(w io.Writer, res analysis.Output) {
	if len(res.Match.Unmatched) > 0 {
		fmt.Fprintln(w, "Species without descriptions:")
		for _, v := range res.Match.Unmatched {
			fmt.Fprintf(w, "  - %s (%s)\n", v.Name, v.Reason)
		}
		fmt.Fprintln(w)
	}

	if res.Report == nil {
		fmt.Fprintln(w, res.Combined)
		return
	}
	if res.Report.Failed {
		gn.Warn("%s", res.Report.Text)
		return
	}
	fmt.Fprintln(w, res.Report.Text)
}
