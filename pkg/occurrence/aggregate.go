package occurrence

import (
	"slices"
	"strings"

	"github.com/gnames/gnflora/pkg/flora"
)

// UnknownFamily is used when the first record of a species has no family.
const UnknownFamily = "Unknown"

// Aggregate counts records per species. Records without a species name,
// or with a blank one, are skipped. The family of a species comes from its first record. The result
// is sorted by count in descending order, species with equal counts keep
// the order of their first appearance.
func Aggregate(records []flora.OccurrenceRecord) []flora.SpeciesAggregate {
	idx := make(map[string]int)
	var res []flora.SpeciesAggregate
	for _, v := range records {
		if strings.TrimSpace(v.Species) == "" {
			continue
		}
		if i, ok := idx[v.Species]; ok {
			res[i].Count++
			continue
		}
		family := v.Family
		if family == "" {
			family = UnknownFamily
		}
		idx[v.Species] = len(res)
		res = append(res, flora.SpeciesAggregate{
			Name:   v.Species,
			Family: family,
			Count:  1,
		})
	}

	slices.SortStableFunc(res, func(a, b flora.SpeciesAggregate) int {
		return b.Count - a.Count
	})
	return res
}
