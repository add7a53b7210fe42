package place

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/mapazajec/mapazajec-backend/internal/catalog"
)

// Validation errors
var (
	ErrInvalidPlace        = errors.New("invalid place")
	ErrDuplicateActivityID = errors.New("duplicate activity id")
	ErrDuplicatePlaceID    = errors.New("duplicate place id")
)

var validate = NewValidator()

// NewValidator returns a validator that knows the catalog tags used on
// place structs.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("activitytype", activityType)
	v.RegisterValidation("agegroup", ageGroup)
	v.RegisterValidation("legacyactivitytype", legacyActivityType)
	v.RegisterValidation("legacyagegroup", legacyAgeGroup)
	return v
}

func activityType(fl validator.FieldLevel) bool {
	return catalog.ActivityTypeKey(fl.Field().String()).Valid()
}

func ageGroup(fl validator.FieldLevel) bool {
	_, ok := catalog.LookupAgeGroup(int(fl.Field().Int()))
	return ok
}

func legacyActivityType(fl validator.FieldLevel) bool {
	_, ok := catalog.CanonicalKey(fl.Field().String())
	return ok
}

func legacyAgeGroup(fl validator.FieldLevel) bool {
	_, ok := catalog.LookupLegacyAgeGroup(int(fl.Field().Int()))
	return ok
}

// Validate checks a place against the catalog: activity types and age
// groups must exist and activity ids must be unique within the place.
func Validate(p PlaceObject) error {
	if err := validate.Struct(p); err != nil {
		return errors.Wrapf(ErrInvalidPlace, "place %d: %v", p.ID, err)
	}
	ids := lo.Map(p.Activities, func(a Activity, _ int) int { return a.ID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return errors.Wrapf(ErrDuplicateActivityID, "place %d: %v", p.ID, dups)
	}
	return nil
}

// ValidateAll validates every place and checks that place ids are unique.
func ValidateAll(places []PlaceObject) error {
	for _, p := range places {
		if err := Validate(p); err != nil {
			return err
		}
	}
	ids := lo.Map(places, func(p PlaceObject, _ int) int { return p.ID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return errors.Wrapf(ErrDuplicatePlaceID, "%v", dups)
	}
	return nil
}

// ValidateLegacy is Validate for the Polish-keyed schema.
func ValidateLegacy(lp LegacyPlace) error {
	if err := validate.Struct(lp); err != nil {
		return errors.Wrapf(ErrInvalidPlace, "place %d: %v", lp.ID, err)
	}
	ids := lo.Map(lp.Zajecia, func(a LegacyActivity, _ int) int { return a.ID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return errors.Wrapf(ErrDuplicateActivityID, "place %d: %v", lp.ID, dups)
	}
	return nil
}

func ValidateAllLegacy(places []LegacyPlace) error {
	for _, lp := range places {
		if err := ValidateLegacy(lp); err != nil {
			return err
		}
	}
	ids := lo.Map(places, func(lp LegacyPlace, _ int) int { return lp.ID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return errors.Wrapf(ErrDuplicatePlaceID, "%v", dups)
	}
	return nil
}
