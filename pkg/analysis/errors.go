package analysis

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
	"github.com/gnames/gnflora/pkg/flora"
)

// NoOccurrencesError is returned when a search found no species.
func NoOccurrencesError(q flora.Query) error {
	msg := `No GBIF occurrences found for <em>%s</em> within %gkm of (%.4f, %.4f)

<em>How to fix:</em>
  1. Increase the radius
  2. Use a higher rank taxon, for example a family`
	vars := []any{q.TaxonName, q.RadiusKm, q.Latitude, q.Longitude}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoOccurrencesError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no occurrences for %q",
			fn.Name(), q.TaxonName),
	}
}

// NoMatchedSpeciesError is returned when none of the processed species has
// a description in the reference index.
func NoMatchedSpeciesError(processed int) error {
	msg := `None of the top <em>%d</em> species has a description in the local e-Flora

<em>How to fix:</em>
  1. Increase max species with --max-species flag
  2. Check that reference files belong to the area`
	vars := []any{processed}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoMatchedSpeciesError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no descriptions for %d species",
			fn.Name(), processed),
	}
}
