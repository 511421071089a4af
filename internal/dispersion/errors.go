package dispersion

import "errors"

// Validation errors returned before the solver runs.
var (
	// ErrInvalidSpecies indicates a species that is not a positively
	// charged ion was supplied in the ion list.
	ErrInvalidSpecies = errors.New("dispersion: species is not a positively charged ion")

	// ErrShape indicates an argument slice of unsupported length.
	ErrShape = errors.New("dispersion: argument has wrong shape")

	// ErrSign indicates a non-positive value where a positive one is
	// required.
	ErrSign = errors.New("dispersion: argument must be positive")
)
