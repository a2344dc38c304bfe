package flora

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../../internal/mocks/flora/flora.go -package=mock_flora

// ReferenceIndex provides point lookups of reference entries by normalized
// scientific name. Implementations are read-only after construction and
// safe for concurrent use.
type ReferenceIndex interface {
	// Lookup returns the entry for a normalized name. A miss returns false
	// and never panics.
	Lookup(key string) (ReferenceEntry, bool)

	// Len returns the number of entries.
	Len() int
}

// BBox is a rectangular search area in decimal degrees.
type BBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// SearchParams describe one page of an occurrence search.
type SearchParams struct {
	TaxonKey int
	BBox     BBox
	Limit    int
	Offset   int
}

// OccurrenceService is a transport to an occurrence network such as GBIF.
type OccurrenceService interface {
	// MatchName matches a name against the backbone taxonomy.
	// It returns an error if the name has no match.
	MatchName(ctx context.Context, name string) (Taxon, error)

	// SearchPage returns one page of georeferenced occurrence records
	// without geospatial issues.
	SearchPage(ctx context.Context, params SearchParams) ([]OccurrenceRecord, error)
}

// Cache keeps aggregated species lists of searches. Entries never expire.
type Cache interface {
	// Get returns cached species. The boolean is false if the key is
	// absent. A cached empty list returns true.
	Get(ctx context.Context, key string) ([]SpeciesAggregate, bool, error)

	// Set stores species under the key, replacing the previous value.
	Set(ctx context.Context, key string, species []SpeciesAggregate) error

	// Close releases resources of the cache.
	Close() error
}

// ReportAssembler creates a natural-language report from a run. Failures
// are returned inside the Report, never as an error.
type ReportAssembler interface {
	Assemble(ctx context.Context, input ReportInput) Report
}

// Archive saves results of runs.
type Archive interface {
	Save(ctx context.Context, run RunRecord) error
}
