// Package matrix implements the field-agnostic two-level matrix algebra the
// Groth-Sahai scheme is built on: Matrix, a 1-indexed grid of pairing
// elements of a single field, and FatMatrix, a grid of same-shaped Matrix
// cells.
package matrix

import (
	"fmt"

	"github.com/arzela/groth-sahai/pairing"
)

// validGroupIDs are the persistence tags recognised by SetGroupID.
var validGroupIDs = map[string]bool{"G1": true, "G2": true, "Zr": true}

// Matrix is a 1-indexed rows x cols grid of elements of a single field.
// Every arithmetic operation returns a fresh Matrix; the only in-place
// mutator is Set, used while building a matrix up cell by cell.
type Matrix struct {
	rows, cols int
	field      pairing.Field
	groupID    string
	cells      [][]pairing.Element // 0-indexed internally
}

// New allocates a rows x cols zero-filled matrix over field.
func New(rows, cols int, field pairing.Field) *Matrix {
	m := &Matrix{rows: rows, cols: cols, field: field}
	m.cells = make([][]pairing.Element, rows)
	for i := range m.cells {
		row := make([]pairing.Element, cols)
		for j := range row {
			row[j] = field.Zero()
		}
		m.cells[i] = row
	}
	return m
}

// NewRandom allocates a rows x cols matrix whose cells are drawn
// independently and uniformly from field.
func NewRandom(rows, cols int, field pairing.Field) (*Matrix, error) {
	m := &Matrix{rows: rows, cols: cols, field: field}
	m.cells = make([][]pairing.Element, rows)
	for i := range m.cells {
		row := make([]pairing.Element, cols)
		for j := range row {
			e, err := field.Random()
			if err != nil {
				return nil, fmt.Errorf("matrix: NewRandom: %w", err)
			}
			row[j] = e
		}
		m.cells[i] = row
	}
	return m, nil
}

// NewFromBytes decodes a rows x cols matrix over field from its row-major
// byte form (see Bytes).
func NewFromBytes(rows, cols int, field pairing.Field, groupID string, data []byte) (*Matrix, error) {
	m := New(rows, cols, field)
	if err := m.SetFromBytes(data); err != nil {
		return nil, err
	}
	m.groupID = groupID
	return m, nil
}

// Rows reports the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Field reports the field every cell belongs to.
func (m *Matrix) Field() pairing.Field { return m.field }

// GroupID reports the persistence tag set by SetGroupID, or "" if unset.
func (m *Matrix) GroupID() string { return m.groupID }

// SetGroupID labels the matrix with a persistence tag. It must be one of
// "G1", "G2", "Zr" and must be set before Bytes is used for archival.
func (m *Matrix) SetGroupID(id string) error {
	if !validGroupIDs[id] {
		return fmt.Errorf("%w: %q", ErrGroupIDInvalid, id)
	}
	m.groupID = id
	return nil
}

func (m *Matrix) checkIndex(i, j int) error {
	if i < 1 || i > m.rows || j < 1 || j > m.cols {
		return fmt.Errorf("%w: (%d,%d) outside [1,%d]x[1,%d]", ErrIndexOutOfRange, i, j, m.rows, m.cols)
	}
	return nil
}

// At returns the element at 1-indexed row i, column j.
func (m *Matrix) At(i, j int) (pairing.Element, error) {
	if err := m.checkIndex(i, j); err != nil {
		return nil, err
	}
	return m.cells[i-1][j-1], nil
}

// MustAt is At, panicking on error; convenient for internal code paths that
// have already validated shape.
func (m *Matrix) MustAt(i, j int) pairing.Element {
	e, err := m.At(i, j)
	if err != nil {
		panic(err)
	}
	return e
}

// Set stores a duplicate of e at 1-indexed row i, column j. e's field must
// be the same field instance as the matrix's.
func (m *Matrix) Set(i, j int, e pairing.Element) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}
	if !e.Field().SameAs(m.field) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrFieldMismatch, i, j)
	}
	m.cells[i-1][j-1] = e.Duplicate()
	return nil
}

func (m *Matrix) sameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

func (m *Matrix) sameField(other *Matrix) bool {
	return m.field.SameAs(other.field)
}

// Add returns m + other, cellwise.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if !m.sameShape(other) {
		return nil, fmt.Errorf("%w: %dx%d + %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	if !m.sameField(other) {
		return nil, ErrFieldMismatch
	}
	res := New(m.rows, m.cols, m.field)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.cells[i][j] = m.field.NewElement().Add(m.cells[i][j], other.cells[i][j])
		}
	}
	return res, nil
}

// Sub returns m - other, cellwise.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if !m.sameShape(other) {
		return nil, fmt.Errorf("%w: %dx%d - %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	if !m.sameField(other) {
		return nil, ErrFieldMismatch
	}
	res := New(m.rows, m.cols, m.field)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.cells[i][j] = m.field.NewElement().Sub(m.cells[i][j], other.cells[i][j])
		}
	}
	return res, nil
}

// Mul returns the matrix product m*other: (i,j) = sum_k m(i,k)*other(k,j),
// where * is the field's multiplicative composition (group composition for
// G1/G2/GT, field multiplication for Zr).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: %dx%d * %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	if !m.sameField(other) {
		return nil, ErrFieldMismatch
	}
	res := New(m.rows, other.cols, m.field)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			acc := m.field.Zero()
			for k := 0; k < m.cols; k++ {
				term := m.field.NewElement().Mul(m.cells[i][k], other.cells[k][j])
				acc = m.field.NewElement().Add(acc, term)
			}
			res.cells[i][j] = acc
		}
	}
	return res, nil
}

// MulZn returns m scaled cellwise by z, a Zr element.
func (m *Matrix) MulZn(z pairing.Element) (*Matrix, error) {
	if z.Kind() != pairing.Zr {
		return nil, fmt.Errorf("%w: scalar must be Zr, got %v", ErrFieldMismatch, z.Kind())
	}
	res := New(m.rows, m.cols, m.field)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.cells[i][j] = m.field.NewElement().MulZn(m.cells[i][j], z)
		}
	}
	return res, nil
}

// Transpose returns the cols x rows transpose of m.
func (m *Matrix) Transpose() *Matrix {
	res := New(m.cols, m.rows, m.field)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.cells[j][i] = m.cells[i][j].Duplicate()
		}
	}
	return res
}

// Map returns a new matrix with f applied to every cell.
func (m *Matrix) Map(f func(pairing.Element) pairing.Element) *Matrix {
	res := New(m.rows, m.cols, m.field)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.cells[i][j] = f(m.cells[i][j])
		}
	}
	return res
}

// RowAsMatrix returns 1-indexed row i as a standalone 1xCols matrix.
func (m *Matrix) RowAsMatrix(i int) (*Matrix, error) {
	if i < 1 || i > m.rows {
		return nil, fmt.Errorf("%w: row %d outside [1,%d]", ErrIndexOutOfRange, i, m.rows)
	}
	res := New(1, m.cols, m.field)
	for j := 0; j < m.cols; j++ {
		res.cells[0][j] = m.cells[i-1][j].Duplicate()
	}
	return res, nil
}

// WithRow returns a copy of m with 1-indexed row i replaced by row (a 1xCols
// matrix, or 1x(Cols-colOffset) starting at column colOffset+1 when
// colOffset is given). Unlike the aliasing replaceRowFromMatrix pattern it
// generalises, WithRow never mutates its receiver.
func (m *Matrix) WithRow(i int, row *Matrix, colOffset ...int) (*Matrix, error) {
	if i < 1 || i > m.rows {
		return nil, fmt.Errorf("%w: row %d outside [1,%d]", ErrIndexOutOfRange, i, m.rows)
	}
	if row.rows != 1 {
		return nil, fmt.Errorf("%w: replacement row must have exactly 1 row, got %d", ErrDimensionMismatch, row.rows)
	}
	if !m.sameField(row) {
		return nil, ErrFieldMismatch
	}
	offset := 0
	if len(colOffset) > 0 {
		offset = colOffset[0]
	}
	if offset < 0 || offset+row.cols > m.cols {
		return nil, fmt.Errorf("%w: row of width %d does not fit at offset %d in width %d", ErrDimensionMismatch, row.cols, offset, m.cols)
	}
	res := New(m.rows, m.cols, m.field)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			res.cells[r][c] = m.cells[r][c].Duplicate()
		}
	}
	for c := 0; c < row.cols; c++ {
		res.cells[i-1][offset+c] = row.cells[0][c].Duplicate()
	}
	return res, nil
}

// Flatten returns the sole cell of a 1x1 matrix.
func (m *Matrix) Flatten() (pairing.Element, error) {
	if m.rows != 1 || m.cols != 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrFlattenShape, m.rows, m.cols)
	}
	return m.cells[0][0], nil
}

// IsEqual reports whether m and other have the same shape and are cellwise
// equal.
func (m *Matrix) IsEqual(other *Matrix) bool {
	if other == nil || !m.sameShape(other) {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if !m.cells[i][j].IsEqual(other.cells[i][j]) {
				return false
			}
		}
	}
	return true
}

// Bytes encodes m row-major, concatenating each cell's fixed-width
// encoding. The shape is not included; callers must carry it out-of-band.
func (m *Matrix) Bytes() []byte {
	size := m.field.ElementSize()
	out := make([]byte, 0, m.rows*m.cols*size)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out = append(out, m.cells[i][j].Bytes()...)
		}
	}
	return out
}

// SetFromBytes decodes data into m's existing shape and field, overwriting
// every cell.
func (m *Matrix) SetFromBytes(data []byte) error {
	size := m.field.ElementSize()
	want := m.rows * m.cols * size
	if len(data) != want {
		return fmt.Errorf("%w: want %d bytes for %dx%d matrix, got %d", ErrDimensionMismatch, want, m.rows, m.cols, len(data))
	}
	idx := 0
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			e := m.field.NewElement()
			if err := e.SetBytes(data[idx : idx+size]); err != nil {
				return fmt.Errorf("matrix: SetFromBytes: cell (%d,%d): %w", i+1, j+1, err)
			}
			m.cells[i][j] = e
			idx += size
		}
	}
	return nil
}
