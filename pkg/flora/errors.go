package flora

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

// InvalidQueryError is returned when a query fails validation.
func InvalidQueryError(fields []string, err error) error {
	msg := `Invalid query, check <em>%s</em>

<em>Valid values:</em>
  - taxon name is not empty
  - latitude is within [-90, 90]
  - longitude is within [-180, 180]
  - radius is a positive number of kilometers`
	vars := []any{strings.Join(fields, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid query: %w", fn.Name(), err),
	}
}
