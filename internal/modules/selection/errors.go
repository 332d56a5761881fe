package selection

import "errors"

var (
	ErrNotFound         = errors.New("apartment or category not found")
	ErrValidation       = errors.New("invalid selection request")
	ErrInvalidSelection = errors.New("reference not in resolved catalog")

	// ErrLocked guards the completion invariant: once an apartment is
	// completed, every selection write fails with this error, no exceptions.
	ErrLocked = errors.New("apartment is completed")
)
