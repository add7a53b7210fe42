package place

import (
	"github.com/pkg/errors"

	"github.com/mapazajec/mapazajec-backend/internal/catalog"
)

var ErrNoLegacyKey = errors.New("activity type has no legacy key")

// LegacyActivity is an Activity in the older Polish-keyed schema. Wiek
// references legacy age bands by their lower bound.
type LegacyActivity struct {
	ID                int     `json:"id"`
	Nazwa             string  `json:"nazwa" validate:"required"`
	Typ               string  `json:"typ" validate:"legacyactivitytype"`
	Wiek              []int   `json:"wiek" validate:"dive,legacyagegroup"`
	StronaInternetowa *string `json:"strona_internetowa,omitempty" validate:"omitempty,url"`
}

// LegacyPlace is a PlaceObject in the older Polish-keyed schema.
type LegacyPlace struct {
	ID          int              `json:"id"`
	Nazwa       string           `json:"nazwa" validate:"required"`
	Lokalizacja Location         `json:"lokalizacja"`
	Zajecia     []LegacyActivity `json:"zajecia" validate:"dive"`
}

// FromLegacy converts a Polish-keyed place into the canonical schema.
// Age references are mapped to the canonical band with the same bounds.
func FromLegacy(lp LegacyPlace) (PlaceObject, error) {
	p := PlaceObject{
		ID:         lp.ID,
		Name:       lp.Nazwa,
		Location:   lp.Lokalizacja,
		Activities: make([]Activity, 0, len(lp.Zajecia)),
	}

	for _, la := range lp.Zajecia {
		key, ok := catalog.CanonicalKey(la.Typ)
		if !ok {
			return PlaceObject{}, errors.Wrapf(catalog.ErrUnknownActivityType, "place %d activity %d: %q", lp.ID, la.ID, la.Typ)
		}
		ages, err := mapAgeGroups(la.Wiek, catalog.LookupLegacyAgeGroup, catalog.LookupAgeGroup)
		if err != nil {
			return PlaceObject{}, errors.Wrapf(err, "place %d activity %d", lp.ID, la.ID)
		}
		p.Activities = append(p.Activities, Activity{
			ID:        la.ID,
			Name:      la.Nazwa,
			Type:      key,
			AgeGroups: ages,
			Website:   la.StronaInternetowa,
		})
	}

	return p, nil
}

// ToLegacy converts a canonical place into the Polish-keyed schema. It
// fails for activity types and age bands the legacy tables do not have.
func ToLegacy(p PlaceObject) (LegacyPlace, error) {
	lp := LegacyPlace{
		ID:          p.ID,
		Nazwa:       p.Name,
		Lokalizacja: p.Location,
		Zajecia:     make([]LegacyActivity, 0, len(p.Activities)),
	}

	for _, a := range p.Activities {
		key, ok := catalog.LegacyKey(a.Type)
		if !ok {
			return LegacyPlace{}, errors.Wrapf(ErrNoLegacyKey, "place %d activity %d: %q", p.ID, a.ID, a.Type)
		}
		ages, err := mapAgeGroups(a.AgeGroups, catalog.LookupAgeGroup, catalog.LookupLegacyAgeGroup)
		if err != nil {
			return LegacyPlace{}, errors.Wrapf(err, "place %d activity %d", p.ID, a.ID)
		}
		lp.Zajecia = append(lp.Zajecia, LegacyActivity{
			ID:                a.ID,
			Nazwa:             a.Name,
			Typ:               key,
			Wiek:              ages,
			StronaInternetowa: a.Website,
		})
	}

	return lp, nil
}

type bandLookup func(min int) (catalog.AgeGroupBand, bool)

// mapAgeGroups translates band references between tables. A band only
// carries over when the target table has one with identical bounds.
func mapAgeGroups(refs []int, from, to bandLookup) ([]int, error) {
	if refs == nil {
		return nil, nil
	}
	out := make([]int, 0, len(refs))
	for _, ref := range refs {
		band, ok := from(ref)
		if !ok {
			return nil, errors.Wrapf(catalog.ErrUnknownAgeGroup, "%d", ref)
		}
		target, ok := to(band.Min)
		if !ok || target.Max != band.Max {
			return nil, errors.Wrapf(catalog.ErrUnknownAgeGroup, "no counterpart for %q", band.Label)
		}
		out = append(out, target.Min)
	}
	return out, nil
}
