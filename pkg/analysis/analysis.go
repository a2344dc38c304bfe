// Package analysis runs the whole GNflora pipeline: occurrence search,
// matching against the reference index and the report.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/gnames/gnflora/pkg/matcher"
	"github.com/gnames/gnflora/pkg/occurrence"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

// Analyzer connects the occurrence client, the reference index and
// optional report assembler and archive.
type Analyzer struct {
	cfg     *config.Config
	occ     *occurrence.Client
	idx     flora.ReferenceIndex
	report  flora.ReportAssembler
	archive flora.Archive
	quiet   bool
}

// Option modifies an Analyzer.
type Option func(*Analyzer)

// OptReport sets the report assembler. Without it no report is created.
func OptReport(r flora.ReportAssembler) Option {
	return func(a *Analyzer) {
		a.report = r
	}
}

// OptArchive sets the archive for run results.
func OptArchive(ar flora.Archive) Option {
	return func(a *Analyzer) {
		a.archive = ar
	}
}

// OptQuiet disables user messages.
func OptQuiet(b bool) Option {
	return func(a *Analyzer) {
		a.quiet = b
	}
}

// New creates an Analyzer.
func New(
	cfg *config.Config,
	occ *occurrence.Client,
	idx flora.ReferenceIndex,
	opts ...Option,
) *Analyzer {
	res := &Analyzer{cfg: cfg, occ: occ, idx: idx}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Output is everything a run produced. Fields are filled as far as the run
// went, so an early termination still returns the species found.
type Output struct {
	ID     string
	Search occurrence.SearchResult
	Match  matcher.Result

	// Combined is the description payload of matched species.
	Combined string

	// Report is nil if no report was requested or the run ended early.
	Report *flora.Report
}

// Run executes the pipeline for a query. It returns an error for an
// invalid query, when no occurrences were found, and when none of the
// species has a description. Report failures are not errors, they are
// given in Output.Report.
func (a *Analyzer) Run(ctx context.Context, q flora.Query) (Output, error) {
	var res Output
	if err := q.Validate(); err != nil {
		return res, err
	}

	start := time.Now()
	res.ID = uuid.NewString()
	slog.Info("Analysis started", "id", res.ID, "taxon", q.TaxonName,
		"lat", q.Latitude, "lon", q.Longitude, "radius_km", q.RadiusKm)
	defer func() {
		a.save(ctx, q, res)
		slog.Info("Analysis finished", "id", res.ID,
			"duration", gnfmt.TimeString(time.Since(start).Seconds()))
	}()

	res.Search = a.occ.SpeciesList(ctx, q)
	if err := res.Search.ResolveErr; err != nil && !a.quiet {
		gn.PrintErrorMessage(err)
	}
	if len(res.Search.Species) == 0 {
		return res, NoOccurrencesError(q)
	}

	a.info("Matching with local e-Flora descriptions...")
	res.Match = matcher.Match(res.Search.Species, a.idx, a.cfg.MaxSpecies)
	a.info(res.Match.Summary())
	slog.Info("Matching finished",
		"processed", res.Match.Processed,
		"matched", res.Match.Succeeded(),
	)
	if res.Match.Succeeded() == 0 {
		return res, NoMatchedSpeciesError(res.Match.Processed)
	}

	res.Combined = matcher.CombinedText(res.Match.Matched)
	if a.report == nil {
		return res, nil
	}

	a.info("Analyzing with Gemini AI, it may take 10-30 seconds...")
	report := a.report.Assemble(ctx, flora.ReportInput{
		Combined:  res.Combined,
		UserInput: q.UserInput,
		Unmatched: res.Match.UnmatchedNames(),
		Species:   res.Search.Species,
	})
	res.Report = &report
	return res, nil
}

// save archives the run. Archive failures do not affect the run.
func (a *Analyzer) save(ctx context.Context, q flora.Query, out Output) {
	if a.archive == nil {
		return
	}
	rec := flora.RunRecord{
		ID:         out.ID,
		CreatedAt:  time.Now().UTC(),
		Query:      q,
		Taxon:      out.Search.Taxon,
		Completion: out.Search.Completion,
		FromCache:  out.Search.FromCache,
		Species:    out.Search.Species,
		Matched:    out.Match.Matched,
		Unmatched:  out.Match.Unmatched,
		Processed:  out.Match.Processed,
	}
	if out.Report != nil {
		rec.Report = *out.Report
	}
	if err := a.archive.Save(ctx, rec); err != nil {
		slog.Error("Cannot archive run", "id", out.ID, "error", err)
		if !a.quiet {
			gn.PrintErrorMessage(err)
		}
	}
}

func (a *Analyzer) info(msg string, vars ...any) {
	if a.quiet {
		return
	}
	gn.Info(msg, vars...)
}
