package flora

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Query describes one search for plants near a point.
type Query struct {
	// TaxonName is a name of any rank, for example "Quercus" or "Fagaceae".
	TaxonName string `validate:"required"`

	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`

	// RadiusKm is the search radius in kilometers.
	RadiusKm float64 `validate:"gt=0"`

	// UserInput is an optional description of a specimen. When it is given,
	// the report is an identification attempt, otherwise a field guide.
	UserInput string
}

// Validate checks that the query has a taxon name, valid coordinates and a
// positive radius.
func (q Query) Validate() error {
	q.TaxonName = strings.TrimSpace(q.TaxonName)
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, v := range verrs {
			fields = append(fields, v.Field())
		}
	}
	return InvalidQueryError(fields, err)
}

// CacheKey returns the key under which aggregated occurrences of the query
// are cached. Only the taxon name and the search area take part in the key.
func (q Query) CacheKey() string {
	return fmt.Sprintf(
		"%s_%s_%s_%s",
		q.TaxonName,
		formatFloat(q.Latitude),
		formatFloat(q.Longitude),
		formatFloat(q.RadiusKm),
	)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
