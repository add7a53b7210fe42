package place

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapazajec/mapazajec-backend/internal/catalog"
)

func strPtr(s string) *string { return &s }

func samplePlace() PlaceObject {
	return PlaceObject{
		ID:   1,
		Name: "Dom Kultury Śródmieście",
		Location: Location{
			Lat:     52.2297,
			Lng:     21.0122,
			Address: "ul. Smolna 9, Warszawa",
		},
		Activities: []Activity{
			{
				ID:        10,
				Name:      "Taniec nowoczesny",
				Type:      catalog.ActivityTypeDance,
				AgeGroups: []int{5, 7},
				Website:   strPtr("https://dk.example.pl/taniec"),
			},
			{
				ID:        11,
				Name:      "Szkółka piłkarska",
				Type:      catalog.ActivityTypeFootball,
				AgeGroups: []int{3},
			},
		},
	}
}

func TestPlaceJSON(t *testing.T) {
	p := samplePlace()

	b, err := json.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"name": "Dom Kultury Śródmieście",
		"location": {"lat": 52.2297, "lng": 21.0122, "address": "ul. Smolna 9, Warszawa"},
		"activities": [
			{"id": 10, "name": "Taniec nowoczesny", "type": "dance", "ageGroups": [5, 7], "website": "https://dk.example.pl/taniec"},
			{"id": 11, "name": "Szkółka piłkarska", "type": "football", "ageGroups": [3]}
		]
	}`, string(b))

	var got PlaceObject
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, p, got)
}

func TestActivityWebsiteAbsent(t *testing.T) {
	var a Activity
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Szachy","type":"chess","ageGroups":[]}`), &a))

	assert.Nil(t, a.Website)
	assert.Equal(t, catalog.ActivityTypeChess, a.Type)
	assert.Empty(t, a.AgeGroups)
}
