package catalog

import "github.com/pkg/errors"

// Catalog errors
var (
	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrUnknownAgeGroup     = errors.New("unknown age group")
	ErrInconsistentCatalog = errors.New("inconsistent catalog")
)
