package catalog

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityTypes(t *testing.T) {
	types := ActivityTypes()

	assert.Len(t, types, 22)
	assert.Equal(t, ActivityTypeDance, types[0].Key)
	assert.Equal(t, ActivityTypeCooking, types[len(types)-1].Key)

	seen := make(map[ActivityTypeKey]bool)
	for _, at := range types {
		assert.False(t, seen[at.Key], "duplicate key %s", at.Key)
		seen[at.Key] = true
	}
}

func TestActivityTypesIsCopy(t *testing.T) {
	types := ActivityTypes()
	types[0].Label = "changed"

	fresh := ActivityTypes()
	assert.Len(t, fresh, 22)
	assert.Equal(t, "Taniec", fresh[0].Label)
}

func TestLookupActivityType(t *testing.T) {
	t.Run("Football", func(t *testing.T) {
		at, ok := LookupActivityType(ActivityTypeFootball)
		require.True(t, ok)
		assert.Equal(t, ActivityType{Key: "football", Label: "Piłka nożna", Color: "#22c55e"}, at)
	})

	t.Run("Every constant has a row", func(t *testing.T) {
		keys := []ActivityTypeKey{
			ActivityTypeDance, ActivityTypeGymnastics, ActivityTypeFootball, ActivityTypeEnglish,
			ActivityTypeSpanish, ActivityTypeArts, ActivityTypeMusic, ActivityTypeChess,
			ActivityTypeMartialArts, ActivityTypeRobotics, ActivityTypeTheatre, ActivityTypeCoding,
			ActivityTypeMathClub, ActivityTypeNature, ActivityTypeSwimming, ActivityTypeAthletics,
			ActivityTypeBasketball, ActivityTypeVolleyball, ActivityTypeScouts, ActivityTypePhotography,
			ActivityTypeCrafts, ActivityTypeCooking,
		}
		assert.Equal(t, keys, ActivityTypeKeys())
		for _, k := range keys {
			_, ok := LookupActivityType(k)
			assert.True(t, ok, k.String())
		}
	})

	t.Run("Unknown key", func(t *testing.T) {
		_, ok := LookupActivityType("pilka_nozna")
		assert.False(t, ok)
	})
}

func TestParseActivityTypeKey(t *testing.T) {
	testCases := []struct {
		in      string
		want    ActivityTypeKey
		wantErr bool
	}{
		{in: "football", want: ActivityTypeFootball},
		{in: "martial_arts", want: ActivityTypeMartialArts},
		{in: "Football", wantErr: true},
		{in: "", wantErr: true},
		{in: "pilka_nozna", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			key, err := ParseActivityTypeKey(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownActivityType))
				assert.Empty(t, key)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, key)
			assert.True(t, key.Valid())
		})
	}
}
