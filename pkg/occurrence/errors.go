package occurrence

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

// TaxonResolutionError is returned when a taxon name cannot be matched to
// the backbone taxonomy.
func TaxonResolutionError(name, kingdom string, err error) error {
	msg := `Taxon <em>%s</em> could not be matched within kingdom <em>%s</em>

<em>How to fix:</em>
  1. Check the spelling of the name
  2. Try a different taxonomic name or rank`
	vars := []any{name, kingdom}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxonResolutionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot resolve taxon %q: %w",
			fn.Name(), name, err),
	}
}

// OccurrenceFetchError is returned when an occurrence page cannot be
// retrieved.
func OccurrenceFetchError(offset int, err error) error {
	msg := "Occurrence search stopped at offset <em>%d</em>, partial results are kept"
	vars := []any{offset}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OccurrenceFetchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot fetch page at offset %d: %w",
			fn.Name(), offset, err),
	}
}
