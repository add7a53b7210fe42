package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyActivityTypes(t *testing.T) {
	types := LegacyActivityTypes()
	assert.Len(t, types, 9)

	t.Run("pilka_nozna matches football", func(t *testing.T) {
		legacy, ok := LookupLegacyActivityType("pilka_nozna")
		require.True(t, ok)
		assert.Equal(t, LegacyActivityType{Key: "pilka_nozna", Label: "Piłka nożna", Color: "#22c55e"}, legacy)

		football, ok := LookupActivityType(ActivityTypeFootball)
		require.True(t, ok)
		assert.Equal(t, football.Label, legacy.Label)
		assert.Equal(t, football.Color, legacy.Color)
	})

	t.Run("Every legacy row translates a canonical row", func(t *testing.T) {
		for _, lt := range types {
			key, ok := CanonicalKey(lt.Key)
			require.True(t, ok, lt.Key)

			canonical, ok := LookupActivityType(key)
			require.True(t, ok, lt.Key)
			assert.Equal(t, canonical.Label, lt.Label)
			assert.Equal(t, canonical.Color, lt.Color)

			back, ok := LegacyKey(key)
			require.True(t, ok)
			assert.Equal(t, lt.Key, back)
		}
	})

	t.Run("Canonical key without a legacy key", func(t *testing.T) {
		_, ok := LegacyKey(ActivityTypeCooking)
		assert.False(t, ok)
	})

	t.Run("Canonical keys are not legacy keys", func(t *testing.T) {
		_, ok := CanonicalKey("football")
		assert.False(t, ok)
	})
}

func TestLegacyAgeGroups(t *testing.T) {
	bands := LegacyAgeGroups()

	require.Len(t, bands, 5)
	assert.Equal(t, AgeGroupBand{Min: 3, Max: 4, Label: "3-4 lata"}, bands[0])
	for i, b := range bands {
		assert.LessOrEqual(t, b.Min, b.Max)
		if i > 0 {
			assert.Less(t, bands[i-1].Min, b.Min)
		}
	}

	b, ok := LookupLegacyAgeGroup(7)
	require.True(t, ok)
	assert.Equal(t, "7-9 lat", b.Label)

	_, ok = LookupLegacyAgeGroup(0)
	assert.False(t, ok)
}

func TestLegacyTablesAreCopies(t *testing.T) {
	types := LegacyActivityTypes()
	types[0].Key = "changed"
	bands := LegacyAgeGroups()
	bands[0].Label = "changed"

	assert.Equal(t, "taniec", LegacyActivityTypes()[0].Key)
	assert.Equal(t, "3-4 lata", LegacyAgeGroups()[0].Label)
}
