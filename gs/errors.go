package gs

import "errors"

var (
	// ErrWitnessShape is returned when a witness passed to a commitment is
	// not a column matrix over the expected domain.
	ErrWitnessShape = errors.New("gs: witness shape mismatch")
)
