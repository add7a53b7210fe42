package catalog

import "github.com/samber/lo"

// AgeGroupBand is an inclusive age range with its display label.
type AgeGroupBand struct {
	Min   int    `json:"min" msgpack:"min"`
	Max   int    `json:"max" msgpack:"max"`
	Label string `json:"label" msgpack:"label"`
}

// Ordered by Min. Bands 2-3 and 3-4 both contain age 3.
var ageGroups = [...]AgeGroupBand{
	{Min: 0, Max: 1, Label: "0-1 lat"},
	{Min: 2, Max: 3, Label: "2-3 lata"},
	{Min: 3, Max: 4, Label: "3-4 lata"},
	{Min: 5, Max: 6, Label: "5-6 lat"},
	{Min: 7, Max: 8, Label: "7-8 lat"},
	{Min: 9, Max: 10, Label: "9-10 lat"},
	{Min: 11, Max: 12, Label: "11-12 lat"},
	{Min: 13, Max: 14, Label: "13-14 lat"},
	{Min: 15, Max: 16, Label: "15-16 lat"},
}

var ageGroupsByMin = lo.KeyBy(ageGroups[:], func(b AgeGroupBand) int {
	return b.Min
})

// AgeGroups returns the age bands ordered by ascending Min.
// The returned slice is a copy.
func AgeGroups() []AgeGroupBand {
	out := make([]AgeGroupBand, len(ageGroups))
	copy(out, ageGroups[:])
	return out
}

// LookupAgeGroup resolves an age-group reference. Activities reference
// bands by their lower bound, so min must equal a band's Min exactly.
func LookupAgeGroup(min int) (AgeGroupBand, bool) {
	b, ok := ageGroupsByMin[min]
	return b, ok
}
