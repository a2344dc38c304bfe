package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnflora/internal/iocache"
	"github.com/gnames/gnflora/internal/iofs"
	"github.com/gnames/gnflora/internal/iogbif"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/gnames/gnflora/pkg/occurrence"
	"github.com/spf13/cobra"
)

// queryFlags keep values of the location flags shared by analyze and
// species commands.
type queryFlags struct {
	taxon     string
	lat       float64
	lon       float64
	radius    float64
	userInput string
	inputFile string
}

func addQueryFlags(cmd *cobra.Command, qf *queryFlags) {
	cmd.Flags().StringVarP(&qf.taxon, "taxon", "t", "",
		"taxon name to search, for example 'Quercus' or 'Rosaceae'")
	cmd.Flags().Float64Var(&qf.lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&qf.lon, "lon", 0, "longitude in decimal degrees")
	cmd.Flags().Float64VarP(&qf.radius, "radius", "r", 10,
		"search radius in kilometers")
	_ = cmd.MarkFlagRequired("taxon")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
}

// addReferenceFlag adds --reference-dir flag to a command that builds
// the reference index.
func addReferenceFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVarP(dir, "reference-dir", "d", "",
		"directory with e-Flora Darwin Core files (default from config)")
}

// referenceOpts converts --reference-dir to config options if it was set.
func referenceOpts(cmd *cobra.Command, dir string) []config.Option {
	if !cmd.Flags().Changed("reference-dir") {
		return nil
	}
	return []config.Option{config.OptReferenceDir(dir)}
}

func addSpecimenFlags(cmd *cobra.Command, qf *queryFlags) {
	cmd.Flags().StringVarP(&qf.userInput, "query", "q", "",
		"description of a specimen to identify")
	cmd.Flags().StringVar(&qf.inputFile, "query-file", "",
		"file with a description of a specimen to identify")
	cmd.MarkFlagsMutuallyExclusive("query", "query-file")
}

// query creates a flora query from flags. The specimen description is
// read from a file if --query-file is given.
func (qf *queryFlags) query() (flora.Query, error) {
	res := flora.Query{
		TaxonName: qf.taxon,
		Latitude:  qf.lat,
		Longitude: qf.lon,
		RadiusKm:  qf.radius,
		UserInput: qf.userInput,
	}
	if qf.inputFile != "" {
		data, err := iofs.ReadFile(qf.inputFile)
		if err != nil {
			return res, err
		}
		res.UserInput = strings.TrimSpace(string(data))
	}
	return res, res.Validate()
}

// newOccurrenceClient creates GBIF service with the configured cache.
// The returned function closes the cache.
func newOccurrenceClient(
	ctx context.Context,
	cfg *config.Config,
) (*occurrence.Client, func(), error) {
	cache, err := iocache.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := iogbif.New(cfg)
	closeFn := func() {
		if err := cache.Close(); err != nil {
			gn.Warn("Cannot close occurrence cache: %s", err.Error())
		}
	}
	return occurrence.New(svc, cache, cfg), closeFn, nil
}

// printSpecies writes a ranked species list.
func printSpecies(w io.Writer, species []flora.SpeciesAggregate, limit int) {
	if limit <= 0 || limit > len(species) {
		limit = len(species)
	}
	fmt.Fprintf(w, "\n%-4s %-40s %-25s %8s\n", "#", "Species", "Family", "Records")
	for i, v := range species[:limit] {
		fmt.Fprintf(w, "%-4d %-40s %-25s %8s\n",
			i+1, v.Name, v.Family, humanize.Comma(int64(v.Count)))
	}
	if rest := len(species) - limit; rest > 0 {
		fmt.Fprintf(w, "... and %s more species\n", humanize.Comma(int64(rest)))
	}
	fmt.Fprintln(w)
}
