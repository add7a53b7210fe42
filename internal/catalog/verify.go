package catalog

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// Verify checks the static tables for structural defects: duplicate or
// unmapped keys, malformed colors, inverted or unordered age bands and
// legacy rows that disagree with the canonical ones.
func Verify() error {
	if err := verifyActivityTypes(activityTypes[:]); err != nil {
		return err
	}
	if err := verifyAgeGroups("age groups", ageGroups[:]); err != nil {
		return err
	}
	if err := verifyLegacyActivityTypes(legacyActivityTypes); err != nil {
		return err
	}
	return verifyAgeGroups("legacy age groups", legacyAgeGroups[:])
}

func verifyActivityTypes(types []ActivityType) error {
	keys := lo.Map(types, func(t ActivityType, _ int) ActivityTypeKey { return t.Key })
	if dups := lo.FindDuplicates(keys); len(dups) > 0 {
		return errors.Wrapf(ErrInconsistentCatalog, "duplicate activity type keys %v", dups)
	}
	for _, t := range types {
		if t.Key == "" || t.Label == "" {
			return errors.Wrapf(ErrInconsistentCatalog, "activity type %q: empty key or label", t.Key)
		}
		if !colorPattern.MatchString(t.Color) {
			return errors.Wrapf(ErrInconsistentCatalog, "activity type %q: malformed color %q", t.Key, t.Color)
		}
	}
	return nil
}

func verifyLegacyActivityTypes(types []LegacyActivityType) error {
	keys := lo.Map(types, func(t LegacyActivityType, _ int) string { return t.Key })
	if dups := lo.FindDuplicates(keys); len(dups) > 0 {
		return errors.Wrapf(ErrInconsistentCatalog, "duplicate legacy activity type keys %v", dups)
	}
	for _, t := range types {
		canonical, ok := CanonicalKey(t.Key)
		if !ok {
			return errors.Wrapf(ErrInconsistentCatalog, "legacy activity type %q has no canonical key", t.Key)
		}
		c, ok := LookupActivityType(canonical)
		if !ok {
			return errors.Wrapf(ErrInconsistentCatalog, "legacy activity type %q maps to unknown key %q", t.Key, canonical)
		}
		if c.Label != t.Label || c.Color != t.Color {
			return errors.Wrapf(ErrInconsistentCatalog, "legacy activity type %q differs from %q", t.Key, canonical)
		}
	}
	return nil
}

func verifyAgeGroups(table string, bands []AgeGroupBand) error {
	for i, b := range bands {
		if b.Min > b.Max {
			return errors.Wrapf(ErrInconsistentCatalog, "%s: band %q has min %d > max %d", table, b.Label, b.Min, b.Max)
		}
		if b.Label == "" {
			return errors.Wrapf(ErrInconsistentCatalog, "%s: band %d-%d has no label", table, b.Min, b.Max)
		}
		if i > 0 && bands[i-1].Min >= b.Min {
			return errors.Wrapf(ErrInconsistentCatalog, "%s: band %q is out of order", table, b.Label)
		}
	}
	return nil
}
