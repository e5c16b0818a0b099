package matrix

import "errors"

var (
	// ErrDimensionMismatch is returned when two containers of incompatible
	// shape are combined.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	// ErrFieldMismatch is returned when a cell or operand does not belong
	// to the expected algebraic domain.
	ErrFieldMismatch = errors.New("matrix: field mismatch")
	// ErrIndexOutOfRange is returned by a 1-indexed accessor given a
	// row/column outside [1, rows]/[1, cols].
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
	// ErrFlattenShape is returned by Flatten on anything but a 1x1 matrix.
	ErrFlattenShape = errors.New("matrix: flatten requires a 1x1 matrix")
	// ErrGroupIDMissing is returned when serialisation is attempted before
	// a groupID has been set.
	ErrGroupIDMissing = errors.New("matrix: groupID not set")
	// ErrGroupIDInvalid is returned when a groupID does not name one of the
	// known persistence tags ("G1", "G2", "Zr").
	ErrGroupIDInvalid = errors.New("matrix: groupID invalid")
)
