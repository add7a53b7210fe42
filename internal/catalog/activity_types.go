package catalog

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ActivityTypeKey is the stable identifier of an activity category.
// Activity records reference categories through it.
type ActivityTypeKey string

const (
	ActivityTypeDance       ActivityTypeKey = "dance"
	ActivityTypeGymnastics  ActivityTypeKey = "gymnastics"
	ActivityTypeFootball    ActivityTypeKey = "football"
	ActivityTypeEnglish     ActivityTypeKey = "english"
	ActivityTypeSpanish     ActivityTypeKey = "spanish"
	ActivityTypeArts        ActivityTypeKey = "arts"
	ActivityTypeMusic       ActivityTypeKey = "music"
	ActivityTypeChess       ActivityTypeKey = "chess"
	ActivityTypeMartialArts ActivityTypeKey = "martial_arts"
	ActivityTypeRobotics    ActivityTypeKey = "robotics"
	ActivityTypeTheatre     ActivityTypeKey = "theatre"
	ActivityTypeCoding      ActivityTypeKey = "coding"
	ActivityTypeMathClub    ActivityTypeKey = "math_club"
	ActivityTypeNature      ActivityTypeKey = "nature"
	ActivityTypeSwimming    ActivityTypeKey = "swimming"
	ActivityTypeAthletics   ActivityTypeKey = "athletics"
	ActivityTypeBasketball  ActivityTypeKey = "basketball"
	ActivityTypeVolleyball  ActivityTypeKey = "volleyball"
	ActivityTypeScouts      ActivityTypeKey = "scouts"
	ActivityTypePhotography ActivityTypeKey = "photography"
	ActivityTypeCrafts      ActivityTypeKey = "crafts"
	ActivityTypeCooking     ActivityTypeKey = "cooking"
)

// ActivityType is the display metadata of one activity category.
type ActivityType struct {
	Key   ActivityTypeKey `json:"key" msgpack:"key"`
	Label string          `json:"label" msgpack:"label"`
	Color string          `json:"color" msgpack:"color"`
}

var activityTypes = [...]ActivityType{
	{Key: ActivityTypeDance, Label: "Taniec", Color: "#ec4899"},
	{Key: ActivityTypeGymnastics, Label: "Gimnastyka", Color: "#f97316"},
	{Key: ActivityTypeFootball, Label: "Piłka nożna", Color: "#22c55e"},
	{Key: ActivityTypeEnglish, Label: "Język angielski", Color: "#3b82f6"},
	{Key: ActivityTypeSpanish, Label: "Język hiszpański", Color: "#3b82f6"},
	{Key: ActivityTypeArts, Label: "Plastyka", Color: "#8b5cf6"},
	{Key: ActivityTypeMusic, Label: "Muzyka", Color: "#eab308"},
	{Key: ActivityTypeChess, Label: "Szachy", Color: "#a16207"},
	{Key: ActivityTypeMartialArts, Label: "Sztuki walki", Color: "#dc2626"},
	{Key: ActivityTypeRobotics, Label: "Robotyka", Color: "#7c3aed"},
	{Key: ActivityTypeTheatre, Label: "Teatr / Drama", Color: "#ef4444"},
	{Key: ActivityTypeCoding, Label: "Programowanie", Color: "#0ea5e9"},
	{Key: ActivityTypeMathClub, Label: "Kółko matematyczne", Color: "#0284c7"},
	{Key: ActivityTypeNature, Label: "Przyroda / ekologia", Color: "#65a30d"},
	{Key: ActivityTypeSwimming, Label: "Pływanie", Color: "#06b6d4"},
	{Key: ActivityTypeAthletics, Label: "Lekkoatletyka", Color: "#f59e0b"},
	{Key: ActivityTypeBasketball, Label: "Koszykówka", Color: "#ea580c"},
	{Key: ActivityTypeVolleyball, Label: "Siatkówka", Color: "#16a34a"},
	{Key: ActivityTypeScouts, Label: "Harcerstwo / skauting", Color: "#15803d"},
	{Key: ActivityTypePhotography, Label: "Fotografia", Color: "#6d28d9"},
	{Key: ActivityTypeCrafts, Label: "Rękodzieło", Color: "#a855f7"},
	{Key: ActivityTypeCooking, Label: "Gotowanie", Color: "#d97706"},
}

var activityTypesByKey = lo.KeyBy(activityTypes[:], func(t ActivityType) ActivityTypeKey {
	return t.Key
})

// ActivityTypes returns the activity type catalog in display order.
// The returned slice is a copy.
func ActivityTypes() []ActivityType {
	out := make([]ActivityType, len(activityTypes))
	copy(out, activityTypes[:])
	return out
}

// ActivityTypeKeys returns every known key in catalog order.
func ActivityTypeKeys() []ActivityTypeKey {
	return lo.Map(activityTypes[:], func(t ActivityType, _ int) ActivityTypeKey {
		return t.Key
	})
}

// LookupActivityType finds the catalog entry for key.
func LookupActivityType(key ActivityTypeKey) (ActivityType, bool) {
	t, ok := activityTypesByKey[key]
	return t, ok
}

// ParseActivityTypeKey converts a raw string into a known key.
func ParseActivityTypeKey(s string) (ActivityTypeKey, error) {
	key := ActivityTypeKey(s)
	if !key.Valid() {
		return "", errors.Wrapf(ErrUnknownActivityType, "%q", s)
	}
	return key, nil
}

func (k ActivityTypeKey) Valid() bool {
	_, ok := activityTypesByKey[k]
	return ok
}

func (k ActivityTypeKey) String() string {
	return string(k)
}
