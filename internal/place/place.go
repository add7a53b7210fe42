package place

import "github.com/mapazajec/mapazajec-backend/internal/catalog"

// Location is where a place is.
type Location struct {
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng     float64 `json:"lng" validate:"gte=-180,lte=180"`
	Address string  `json:"address" validate:"required"`
}

// Activity is a named pursuit offered at a place. AgeGroups holds
// references to catalog age bands by their lower bound.
type Activity struct {
	ID        int                     `json:"id"`
	Name      string                  `json:"name" validate:"required"`
	Type      catalog.ActivityTypeKey `json:"type" validate:"activitytype"`
	AgeGroups []int                   `json:"ageGroups" validate:"dive,agegroup"`
	Website   *string                 `json:"website,omitempty" validate:"omitempty,url"`
}

// PlaceObject is a venue together with the activities it owns.
type PlaceObject struct {
	ID         int        `json:"id"`
	Name       string     `json:"name" validate:"required"`
	Location   Location   `json:"location"`
	Activities []Activity `json:"activities" validate:"dive"`
}
