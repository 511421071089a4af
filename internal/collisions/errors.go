package collisions

import "errors"

// Validation errors returned before any formula is evaluated.
var (
	// ErrInvalidSpecies indicates a species pair that is not exactly
	// two charged ions.
	ErrInvalidSpecies = errors.New("collisions: species pair must be two charged ions")

	// ErrShape indicates an argument slice of unsupported length.
	ErrShape = errors.New("collisions: argument has wrong shape")

	// ErrSign indicates a non-positive temperature, density or speed.
	ErrSign = errors.New("collisions: argument must be positive")

	// ErrMethod indicates an unsupported Coulomb logarithm method.
	ErrMethod = errors.New("collisions: unsupported Coulomb logarithm method")

	// ErrVariant indicates an unknown formula variant.
	ErrVariant = errors.New("collisions: unknown formula variant")
)
