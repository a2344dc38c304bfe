// Package matcher joins ranked species against the reference index and
// extracts prioritized description sections.
package matcher

import (
	"fmt"
	"strings"

	"github.com/gnames/gnflora/pkg/flora"
	"github.com/gnames/gnflora/pkg/names"
)

// PrioritySections are description labels used for descriptions, in the
// order they appear in the output. Other labels are ignored.
var PrioritySections = []string{
	"Morphological description",
	"Diagnostic characters",
	"Habitat",
	"Distribution",
	"Morphology",
	"Diagnostic",
}

// Result is the outcome of matching a species list.
type Result struct {
	// Matched species keep the rank order of the input.
	Matched []flora.MatchedSpecies

	Unmatched []flora.UnmatchedSpecies

	// Processed is the number of species considered after applying the
	// maximum.
	Processed int
}

// Succeeded returns the number of matched species.
func (r Result) Succeeded() int {
	return len(r.Matched)
}

// UnmatchedNames returns names of unmatched species in rank order.
func (r Result) UnmatchedNames() []string {
	res := make([]string, len(r.Unmatched))
	for i, v := range r.Unmatched {
		res[i] = v.Name
	}
	return res
}

// Extract builds a description of a reference entry. The boolean is false
// when none of PrioritySections has non-blank text.
func Extract(entry flora.ReferenceEntry) (string, bool) {
	parts := []string{"**Scientific Name:** " + entry.ScientificName}

	var vern []string
	for _, v := range entry.Vernaculars {
		if v = strings.TrimSpace(v); v != "" {
			vern = append(vern, v)
		}
	}
	if len(vern) > 0 {
		parts = append(parts, "**Common Names:** "+strings.Join(vern, ", "))
	}

	var found bool
	for _, label := range PrioritySections {
		text, ok := entry.Sections[label]
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		found = true
		parts = append(parts, fmt.Sprintf("**%s:**\n%s", label, text))
	}

	if !found {
		return "", false
	}
	return strings.Join(parts, "\n\n"), true
}

// Match looks up the first maxSpecies species in the index. Species absent
// from the index or without prioritized sections become unmatched.
// If maxSpecies is not positive, all species are processed.
func Match(
	species []flora.SpeciesAggregate,
	idx flora.ReferenceIndex,
	maxSpecies int,
) Result {
	if maxSpecies > 0 && len(species) > maxSpecies {
		species = species[:maxSpecies]
	}

	res := Result{Processed: len(species)}
	for _, v := range species {
		entry, ok := idx.Lookup(names.Normalize(v.Name))
		if !ok {
			res.Unmatched = append(res.Unmatched, flora.UnmatchedSpecies{
				Name:   v.Name,
				Reason: flora.ReasonNotFound,
			})
			continue
		}

		desc, ok := Extract(entry)
		if !ok {
			res.Unmatched = append(res.Unmatched, flora.UnmatchedSpecies{
				Name:   v.Name,
				Reason: flora.ReasonNoSections,
			})
			continue
		}

		res.Matched = append(res.Matched, flora.MatchedSpecies{
			Name:        v.Name,
			Family:      v.Family,
			GBIFCount:   v.Count,
			Description: desc,
		})
	}
	return res
}

// CombinedText joins descriptions of matched species into one payload for
// the report assembler.
func CombinedText(matched []flora.MatchedSpecies) string {
	res := make([]string, len(matched))
	for i, v := range matched {
		res[i] = fmt.Sprintf(
			"### %s (Family: %s, GBIF Records in Area: %d)\n%s",
			v.Name, v.Family, v.GBIFCount, v.Description,
		)
	}
	return strings.Join(res, "\n\n")
}

// Summary returns the data collection summary line.
func (r Result) Summary() string {
	return fmt.Sprintf("Descriptions found: %d / %d", r.Succeeded(), r.Processed)
}
