// Package ioreference builds the reference index from e-Flora Darwin Core
// files: taxa, descriptions and vernacular names. This is an impure I/O
// package implementing flora.ReferenceIndex.
package ioreference

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/gnames/gnflora/pkg/names"
	"github.com/gnames/gnflora/pkg/parserpool"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
)

// Stats describes the content of a built index.
type Stats struct {
	// Taxa is the number of indexed entries.
	Taxa int

	// Duplicates is the number of taxa dropped because their normalized
	// name was already indexed.
	Duplicates int

	// SkippedEmpty is the number of taxon rows without a scientific name.
	SkippedEmpty int

	WithDescriptions int
	WithVernaculars  int

	// NonBinomial counts entries whose names are not binomials according
	// to gnparser.
	NonBinomial int
}

// Index is a read-only name-indexed reference dataset.
type Index struct {
	entries map[string]flora.ReferenceEntry
	stats   Stats
}

// Lookup implements flora.ReferenceIndex.
func (i *Index) Lookup(key string) (flora.ReferenceEntry, bool) {
	if i == nil {
		return flora.ReferenceEntry{}, false
	}
	res, ok := i.entries[key]
	return res, ok
}

// Len implements flora.ReferenceIndex.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.entries)
}

// Stats returns statistics collected during the build.
func (i *Index) Stats() Stats {
	return i.stats
}

// Build creates the index from reference files located by the config.
func Build(ctx context.Context, cfg *config.Config) (*Index, error) {
	taxon, desc, vern := cfg.ReferencePaths()
	return Load(ctx, taxon, desc, vern, cfg.JobsNumber)
}

type taxonRow struct {
	id   string
	name string
}

// Load reads the three reference files concurrently and joins them by
// taxon ID. Any read or format error aborts the build, no partial index is
// returned.
func Load(
	ctx context.Context,
	taxonPath, descPath, vernPath string,
	jobsNum int,
) (*Index, error) {
	start := time.Now()

	var taxa []taxonRow
	var skipped []int
	var descs map[string]map[string]string
	var verns map[string][]string

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		taxa, skipped, err = readTaxa(taxonPath)
		return err
	})
	g.Go(func() error {
		var err error
		descs, err = readDescriptions(descPath)
		return err
	})
	g.Go(func() error {
		var err error
		verns, err = readVernaculars(vernPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(skipped) > 0 {
		slog.Warn("Taxa without scientific name skipped",
			"path", taxonPath, "count", len(skipped), "lines", skipped)
		gn.Warn("Skipped <em>%s</em> taxa without scientific name in %s",
			humanize.Comma(int64(len(skipped))), taxonPath)
	}

	res := &Index{stats: Stats{SkippedEmpty: len(skipped)}}
	entries := make([]flora.ReferenceEntry, 0, len(taxa))
	seen := make(map[string]struct{}, len(taxa))
	for _, v := range taxa {
		key := names.Normalize(v.name)
		if _, ok := seen[key]; ok {
			res.stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		sections := descs[v.id]
		if sections == nil {
			sections = make(map[string]string)
		}
		entries = append(entries, flora.ReferenceEntry{
			ID:             gnuuid.New(key).String(),
			TaxonID:        v.id,
			Key:            key,
			ScientificName: v.name,
			Sections:       sections,
			Vernaculars:    verns[v.id],
		})
	}

	if err := setCardinality(ctx, entries, jobsNum); err != nil {
		return nil, err
	}

	res.entries = make(map[string]flora.ReferenceEntry, len(entries))
	for _, v := range entries {
		res.entries[v.Key] = v
		if len(v.Sections) > 0 {
			res.stats.WithDescriptions++
		}
		if len(v.Vernaculars) > 0 {
			res.stats.WithVernaculars++
		}
		if v.Cardinality != 2 {
			res.stats.NonBinomial++
		}
	}
	res.stats.Taxa = len(res.entries)

	slog.Info("Reference index built",
		"taxa", res.stats.Taxa,
		"duplicates", res.stats.Duplicates,
		"skipped_empty", res.stats.SkippedEmpty,
		"with_descriptions", res.stats.WithDescriptions,
		"with_vernaculars", res.stats.WithVernaculars,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res, nil
}

// setCardinality parses names of entries concurrently.
func setCardinality(
	ctx context.Context,
	entries []flora.ReferenceEntry,
	jobsNum int,
) error {
	pool := parserpool.NewPool(jobsNum)
	defer pool.Close()

	g, ctx := errgroup.WithContext(ctx)
	if jobsNum > 0 {
		g.SetLimit(jobsNum)
	}
	for i := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := pool.Parse(entries[i].ScientificName)
			entries[i].Cardinality = parserpool.Cardinality(p)
			return nil
		})
	}
	return g.Wait()
}

// readTaxa reads 'id' and 'scientificName' columns. Rows without a name
// are skipped, their line numbers are returned.
func readTaxa(path string) ([]taxonRow, []int, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, nil, err
	}
	if err = t.requireColumns("id", "scientificName"); err != nil {
		return nil, nil, err
	}

	var skipped []int
	res := make([]taxonRow, 0, len(t.rows))
	for i, r := range t.rows {
		name := t.field(r, "scientificName")
		if name == "" {
			// the header is line 1
			skipped = append(skipped, i+2)
			continue
		}
		res = append(res, taxonRow{id: t.field(r, "id"), name: name})
	}
	return res, skipped, nil
}

// readDescriptions groups descriptions by taxon ID into label to text
// mapping. A later row with the same label replaces the earlier one.
func readDescriptions(path string) (map[string]map[string]string, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err = t.requireColumns("id", "description", "type"); err != nil {
		return nil, err
	}

	res := make(map[string]map[string]string)
	for _, r := range t.rows {
		id := t.field(r, "id")
		if res[id] == nil {
			res[id] = make(map[string]string)
		}
		res[id][t.field(r, "type")] = t.field(r, "description")
	}
	return res, nil
}

// readVernaculars uses the first column as taxon ID and the second as a
// vernacular name. Names are deduplicated per taxon keeping the order of
// their first appearance, empty names are skipped.
func readVernaculars(path string) (map[string][]string, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if len(t.tsv.Headers()) < 2 {
		return nil, FormatError(path,
			errors.New("at least two columns are required"))
	}

	res := make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	for _, r := range t.rows {
		id, name := clean(r[0]), clean(r[1])
		if name == "" {
			continue
		}
		if seen[id] == nil {
			seen[id] = make(map[string]struct{})
		}
		if _, ok := seen[id][name]; ok {
			continue
		}
		seen[id][name] = struct{}{}
		res[id] = append(res[id], name)
	}
	return res, nil
}
