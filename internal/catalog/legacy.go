package catalog

import "github.com/samber/lo"

// LegacyActivityType is an activity type row of the older Polish-keyed
// schema. Label and color always come from the canonical row.
type LegacyActivityType struct {
	Key   string `json:"key" msgpack:"key"`
	Label string `json:"label" msgpack:"label"`
	Color string `json:"color" msgpack:"color"`
}

type legacyKeyMapping struct {
	legacy    string
	canonical ActivityTypeKey
}

var legacyKeys = [...]legacyKeyMapping{
	{legacy: "taniec", canonical: ActivityTypeDance},
	{legacy: "gimnastyka", canonical: ActivityTypeGymnastics},
	{legacy: "pilka_nozna", canonical: ActivityTypeFootball},
	{legacy: "jezyk_angielski", canonical: ActivityTypeEnglish},
	{legacy: "plastyka", canonical: ActivityTypeArts},
	{legacy: "muzyka", canonical: ActivityTypeMusic},
	{legacy: "szachy", canonical: ActivityTypeChess},
	{legacy: "sztuki_walki", canonical: ActivityTypeMartialArts},
	{legacy: "robotyka", canonical: ActivityTypeRobotics},
}

var legacyActivityTypes = lo.Map(legacyKeys[:], func(m legacyKeyMapping, _ int) LegacyActivityType {
	t := activityTypesByKey[m.canonical]
	return LegacyActivityType{Key: m.legacy, Label: t.Label, Color: t.Color}
})

var (
	canonicalByLegacy = lo.Associate(legacyKeys[:], func(m legacyKeyMapping) (string, ActivityTypeKey) {
		return m.legacy, m.canonical
	})
	legacyByCanonical = lo.Associate(legacyKeys[:], func(m legacyKeyMapping) (ActivityTypeKey, string) {
		return m.canonical, m.legacy
	})
	legacyActivityTypesByKey = lo.KeyBy(legacyActivityTypes, func(t LegacyActivityType) string {
		return t.Key
	})
)

var legacyAgeGroups = [...]AgeGroupBand{
	{Min: 3, Max: 4, Label: "3-4 lata"},
	{Min: 5, Max: 6, Label: "5-6 lat"},
	{Min: 7, Max: 9, Label: "7-9 lat"},
	{Min: 10, Max: 12, Label: "10-12 lat"},
	{Min: 13, Max: 15, Label: "13-15 lat"},
}

var legacyAgeGroupsByMin = lo.KeyBy(legacyAgeGroups[:], func(b AgeGroupBand) int {
	return b.Min
})

// LegacyActivityTypes returns the Polish-keyed activity types. The
// returned slice is a copy.
func LegacyActivityTypes() []LegacyActivityType {
	out := make([]LegacyActivityType, len(legacyActivityTypes))
	copy(out, legacyActivityTypes)
	return out
}

// LegacyAgeGroups returns the age bands of the Polish-keyed schema.
func LegacyAgeGroups() []AgeGroupBand {
	out := make([]AgeGroupBand, len(legacyAgeGroups))
	copy(out, legacyAgeGroups[:])
	return out
}

func LookupLegacyActivityType(key string) (LegacyActivityType, bool) {
	t, ok := legacyActivityTypesByKey[key]
	return t, ok
}

func LookupLegacyAgeGroup(min int) (AgeGroupBand, bool) {
	b, ok := legacyAgeGroupsByMin[min]
	return b, ok
}

// CanonicalKey maps a Polish key such as "pilka_nozna" to its canonical key.
func CanonicalKey(legacy string) (ActivityTypeKey, bool) {
	k, ok := canonicalByLegacy[legacy]
	return k, ok
}

// LegacyKey maps a canonical key back to the Polish schema. Only nine
// categories exist there.
func LegacyKey(key ActivityTypeKey) (string, bool) {
	k, ok := legacyByCanonical[key]
	return k, ok
}
