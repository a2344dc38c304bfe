// Package flora contains domain types and contracts shared by GNflora
// components. It is a pure package, I/O is implemented in internal/io*
// packages.
package flora

import (
	"strings"
)

// OccurrenceRecord is one observation returned by the occurrence service.
// Records are folded into SpeciesAggregate immediately after retrieval.
type OccurrenceRecord struct {
	// Species is the species-level name of the record. It can be empty
	// for records identified to a higher rank only.
	Species string

	// Family of the species, can be empty.
	Family string

	Latitude  float64
	Longitude float64
}

// SpeciesAggregate summarizes all occurrence records of one species found
// by a search.
type SpeciesAggregate struct {
	// Name is the species name as reported by the occurrence service.
	Name string

	// Family is taken from the first record of the species.
	Family string

	// Count is the number of records of the species, always positive.
	Count int
}

// Taxon is the result of matching a name against the GBIF backbone.
type Taxon struct {
	// UsageKey is the GBIF identifier of the taxon, used to search
	// occurrences.
	UsageKey int

	ScientificName string
	CanonicalName  string
	Rank           string

	// MatchType is EXACT, FUZZY, HIGHERRANK or NONE.
	MatchType  string
	Confidence int

	Kingdom string
	Phylum  string
	Class   string
	Order   string
	Family  string
	Genus   string
}

// Classification returns a breadcrumb of the taxon's higher ranks, from
// kingdom to genus, skipping empty ranks.
func (t Taxon) Classification() string {
	var res []string
	for _, v := range []string{
		t.Kingdom, t.Phylum, t.Class, t.Order, t.Family, t.Genus,
	} {
		if v != "" {
			res = append(res, v)
		}
	}
	return strings.Join(res, " -> ")
}

// ReferenceEntry is one taxon of the reference dataset.
type ReferenceEntry struct {
	// ID is a UUID v5 generated from the Key.
	ID string

	// TaxonID is the identifier of the taxon in the source files.
	TaxonID string

	// Key is the normalized name the entry is indexed by.
	Key string

	// ScientificName is the full name with authorship.
	ScientificName string

	// Sections maps a description label (for example "Habitat") to its
	// text.
	Sections map[string]string

	// Vernaculars are deduplicated common names in the order of their
	// first appearance.
	Vernaculars []string

	// Cardinality is 2 for binomials, 3 for infraspecies, 1 for uninomials
	// and 0 when the name could not be parsed.
	Cardinality int
}

// Reason explains why a species has no description.
type Reason string

const (
	// ReasonNotFound means the normalized name is absent from the
	// reference index.
	ReasonNotFound Reason = "not found in index"

	// ReasonNoSections means the entry exists but has no non-blank
	// prioritized sections.
	ReasonNoSections Reason = "no relevant sections found"
)

// MatchedSpecies is a species with a description extracted from the
// reference index.
type MatchedSpecies struct {
	Name        string
	Family      string
	GBIFCount   int
	Description string
}

// UnmatchedSpecies is a species without a usable description.
type UnmatchedSpecies struct {
	Name   string
	Reason Reason
}

// Completion tells why occurrence pagination stopped.
type Completion string

const (
	// Exhausted means the service returned an empty or short page.
	Exhausted Completion = "exhausted"

	// Capped means the result cap was reached.
	Capped Completion = "capped"

	// Failed means a page request failed. Records collected before the
	// failure are kept.
	Failed Completion = "failed"
)
