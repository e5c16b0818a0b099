package matrix

import (
	"fmt"

	"github.com/arzela/groth-sahai/pairing"
)

// FatMatrix is a rows x cols grid of Matrix cells, every cell sharing the
// same inner shape (innerRows x innerCols) and field. It is the carrier for
// the CRS's u/v commitment keys and for a proof's pi/theta matrices.
type FatMatrix struct {
	rows, cols           int
	innerRows, innerCols int
	field                pairing.Field
	groupID              string
	cells                [][]*Matrix
}

// NewFat allocates a rows x cols grid of zero-filled innerRows x innerCols
// matrices over field.
func NewFat(rows, cols, innerRows, innerCols int, field pairing.Field) *FatMatrix {
	fm := &FatMatrix{rows: rows, cols: cols, innerRows: innerRows, innerCols: innerCols, field: field}
	fm.cells = make([][]*Matrix, rows)
	for i := range fm.cells {
		row := make([]*Matrix, cols)
		for j := range row {
			row[j] = New(innerRows, innerCols, field)
		}
		fm.cells[i] = row
	}
	return fm
}

func (fm *FatMatrix) Rows() int             { return fm.rows }
func (fm *FatMatrix) Cols() int             { return fm.cols }
func (fm *FatMatrix) InnerRows() int        { return fm.innerRows }
func (fm *FatMatrix) InnerCols() int        { return fm.innerCols }
func (fm *FatMatrix) Field() pairing.Field { return fm.field }

// GroupID reports the persistence tag set by SetGroupID, or "" if unset.
func (fm *FatMatrix) GroupID() string { return fm.groupID }

// SetGroupID labels fm and every inner cell with the same persistence tag,
// required before Bytes is used for archival.
func (fm *FatMatrix) SetGroupID(id string) error {
	if !validGroupIDs[id] {
		return fmt.Errorf("%w: %q", ErrGroupIDInvalid, id)
	}
	fm.groupID = id
	for i := range fm.cells {
		for j := range fm.cells[i] {
			fm.cells[i][j].groupID = id
		}
	}
	return nil
}

// Bytes encodes fm row-major, concatenating each inner cell's Bytes(), in
// turn row-major within the cell. groupID must be set.
func (fm *FatMatrix) Bytes() ([]byte, error) {
	if fm.groupID == "" {
		return nil, ErrGroupIDMissing
	}
	out := make([]byte, 0)
	for i := 0; i < fm.rows; i++ {
		for j := 0; j < fm.cols; j++ {
			out = append(out, fm.cells[i][j].Bytes()...)
		}
	}
	return out, nil
}

// SetFromBytes decodes data into fm's existing outer/inner shape and field.
func (fm *FatMatrix) SetFromBytes(data []byte) error {
	size := fm.field.ElementSize() * fm.innerRows * fm.innerCols
	want := fm.rows * fm.cols * size
	if len(data) != want {
		return fmt.Errorf("%w: want %d bytes for %dx%d fat matrix of %dx%d cells, got %d", ErrDimensionMismatch, want, fm.rows, fm.cols, fm.innerRows, fm.innerCols, len(data))
	}
	idx := 0
	for i := 0; i < fm.rows; i++ {
		for j := 0; j < fm.cols; j++ {
			cell := New(fm.innerRows, fm.innerCols, fm.field)
			if err := cell.SetFromBytes(data[idx : idx+size]); err != nil {
				return fmt.Errorf("matrix: FatMatrix.SetFromBytes: cell (%d,%d): %w", i+1, j+1, err)
			}
			fm.cells[i][j] = cell
			idx += size
		}
	}
	return nil
}

func (fm *FatMatrix) checkIndex(i, j int) error {
	if i < 1 || i > fm.rows || j < 1 || j > fm.cols {
		return fmt.Errorf("%w: (%d,%d) outside [1,%d]x[1,%d]", ErrIndexOutOfRange, i, j, fm.rows, fm.cols)
	}
	return nil
}

// At returns the 1-indexed (i,j) cell.
func (fm *FatMatrix) At(i, j int) (*Matrix, error) {
	if err := fm.checkIndex(i, j); err != nil {
		return nil, err
	}
	return fm.cells[i-1][j-1], nil
}

// Set installs a duplicate of cell at 1-indexed (i,j). cell must have the
// matrix's inner shape and field.
func (fm *FatMatrix) Set(i, j int, cell *Matrix) error {
	if err := fm.checkIndex(i, j); err != nil {
		return err
	}
	if cell.rows != fm.innerRows || cell.cols != fm.innerCols {
		return fmt.Errorf("%w: cell (%d,%d) has shape %dx%d, want %dx%d", ErrDimensionMismatch, i, j, cell.rows, cell.cols, fm.innerRows, fm.innerCols)
	}
	if !cell.field.SameAs(fm.field) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrFieldMismatch, i, j)
	}
	cp := *cell
	dup := make([][]pairing.Element, cell.rows)
	for r := range dup {
		dup[r] = make([]pairing.Element, cell.cols)
		for c := range dup[r] {
			dup[r][c] = cell.cells[r][c].Duplicate()
		}
	}
	cp.cells = dup
	fm.cells[i-1][j-1] = &cp
	return nil
}

func (fm *FatMatrix) sameShape(other *FatMatrix) bool {
	return fm.rows == other.rows && fm.cols == other.cols &&
		fm.innerRows == other.innerRows && fm.innerCols == other.innerCols
}

func (fm *FatMatrix) sameField(other *FatMatrix) bool {
	return fm.field.SameAs(other.field)
}

// Add returns fm + other, cellwise (cellwise Matrix.Add on corresponding
// inner matrices).
func (fm *FatMatrix) Add(other *FatMatrix) (*FatMatrix, error) {
	if !fm.sameShape(other) {
		return nil, fmt.Errorf("%w: fat shapes differ", ErrDimensionMismatch)
	}
	if !fm.sameField(other) {
		return nil, ErrFieldMismatch
	}
	res := NewFat(fm.rows, fm.cols, fm.innerRows, fm.innerCols, fm.field)
	for i := 0; i < fm.rows; i++ {
		for j := 0; j < fm.cols; j++ {
			sum, err := fm.cells[i][j].Add(other.cells[i][j])
			if err != nil {
				return nil, err
			}
			res.cells[i][j] = sum
		}
	}
	return res, nil
}

// Sub returns fm - other, cellwise.
func (fm *FatMatrix) Sub(other *FatMatrix) (*FatMatrix, error) {
	if !fm.sameShape(other) {
		return nil, fmt.Errorf("%w: fat shapes differ", ErrDimensionMismatch)
	}
	if !fm.sameField(other) {
		return nil, ErrFieldMismatch
	}
	res := NewFat(fm.rows, fm.cols, fm.innerRows, fm.innerCols, fm.field)
	for i := 0; i < fm.rows; i++ {
		for j := 0; j < fm.cols; j++ {
			diff, err := fm.cells[i][j].Sub(other.cells[i][j])
			if err != nil {
				return nil, err
			}
			res.cells[i][j] = diff
		}
	}
	return res, nil
}

// MulZn scales every cell of fm by z, a Zr element.
func (fm *FatMatrix) MulZn(z pairing.Element) (*FatMatrix, error) {
	res := NewFat(fm.rows, fm.cols, fm.innerRows, fm.innerCols, fm.field)
	for i := 0; i < fm.rows; i++ {
		for j := 0; j < fm.cols; j++ {
			scaled, err := fm.cells[i][j].MulZn(z)
			if err != nil {
				return nil, err
			}
			res.cells[i][j] = scaled
		}
	}
	return res, nil
}

// Transpose returns the cols x rows transpose of fm (inner cells are moved,
// not themselves transposed).
func (fm *FatMatrix) Transpose() *FatMatrix {
	res := NewFat(fm.cols, fm.rows, fm.innerRows, fm.innerCols, fm.field)
	for i := 0; i < fm.rows; i++ {
		for j := 0; j < fm.cols; j++ {
			res.cells[j][i] = fm.cells[i][j]
		}
	}
	return res
}

// FatMap applies f to every outer cell of fm, yielding a new FatMatrix.
func (fm *FatMatrix) FatMap(f func(*Matrix) *Matrix) *FatMatrix {
	res := NewFat(fm.rows, fm.cols, fm.innerRows, fm.innerCols, fm.field)
	for i := 0; i < fm.rows; i++ {
		for j := 0; j < fm.cols; j++ {
			res.cells[i][j] = f(fm.cells[i][j])
		}
	}
	return res
}

// Flatten returns the sole cell of a 1x1 FatMatrix.
func (fm *FatMatrix) Flatten() (*Matrix, error) {
	if fm.rows != 1 || fm.cols != 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrFlattenShape, fm.rows, fm.cols)
	}
	return fm.cells[0][0], nil
}

// IsEqual reports whether fm and other have the same outer and inner shape
// and are cellwise equal.
func (fm *FatMatrix) IsEqual(other *FatMatrix) bool {
	if other == nil || !fm.sameShape(other) {
		return false
	}
	for i := 0; i < fm.rows; i++ {
		for j := 0; j < fm.cols; j++ {
			if !fm.cells[i][j].IsEqual(other.cells[i][j]) {
				return false
			}
		}
	}
	return true
}

// FatMap on Matrix lifts a per-cell function into a FatMatrix: it is the
// dual of (*FatMatrix).FatMap, used to build commitment/proof matrices whose
// (i,j) cell is derived from a single scalar or group element at (i,j) of m.
func (m *Matrix) FatMap(innerRows, innerCols int, f func(pairing.Element) *Matrix) *FatMatrix {
	first := f(m.cells[0][0])
	res := NewFat(m.rows, m.cols, innerRows, innerCols, first.field)
	res.cells[0][0] = first
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if i == 0 && j == 0 {
				continue
			}
			res.cells[i][j] = f(m.cells[i][j])
		}
	}
	return res
}

// MulFat returns the matrix product of m (as a 1xN scalar matrix acting via
// MulZn, N = m.cols) against fat's rows: entry j of the result is the
// FatMatrix-weighted sum sum_i m(1,i) . fat(i,j), read off when m has a
// single row. It generalises ordinary matrix multiplication to the case
// where the right operand's cells are themselves matrices.
func (m *Matrix) MulFat(fat *FatMatrix) (*FatMatrix, error) {
	if m.cols != fat.rows {
		return nil, fmt.Errorf("%w: %dx%d * fat %dx%d", ErrDimensionMismatch, m.rows, m.cols, fat.rows, fat.cols)
	}
	if !m.field.SameAs(fat.field) {
		return nil, ErrFieldMismatch
	}
	res := NewFat(m.rows, fat.cols, fat.innerRows, fat.innerCols, fat.field)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < fat.cols; j++ {
			acc := New(fat.innerRows, fat.innerCols, fat.field)
			for k := 0; k < m.cols; k++ {
				scaled, err := fat.cells[k][j].MulZn(m.cells[i][k])
				if err != nil {
					return nil, err
				}
				sum, err := acc.Add(scaled)
				if err != nil {
					return nil, err
				}
				acc = sum
			}
			res.cells[i][j] = acc
		}
	}
	return res, nil
}

// F is the pairing-lift: given A, a G1^{2x1} column and B, a G2^{2x1}
// column, it returns the 2x2 GT matrix R with R(i,j) = e(A(i,1), B(j,1)).
// It evaluates the bilinear form on two committed vectors, and is exposed
// as a package function (rather than a FatMatrix method) because its
// operands are plain Matrix values, not fat ones.
func F(pr pairing.Pairing, A, B *Matrix) (*Matrix, error) {
	if A.rows != 2 || A.cols != 1 || B.rows != 2 || B.cols != 1 {
		return nil, fmt.Errorf("%w: F requires 2x1 operands, got %dx%d and %dx%d", ErrDimensionMismatch, A.rows, A.cols, B.rows, B.cols)
	}
	gt := pr.GT()
	res := New(2, 2, gt)
	for i := 1; i <= 2; i++ {
		for j := 1; j <= 2; j++ {
			a, err := A.At(i, 1)
			if err != nil {
				return nil, err
			}
			b, err := B.At(j, 1)
			if err != nil {
				return nil, err
			}
			p, err := pr.Pair(a, b)
			if err != nil {
				return nil, fmt.Errorf("matrix: F: %w", err)
			}
			res.cells[i-1][j-1] = p
		}
	}
	return res, nil
}

// FatPoint reduces fm against other, both n x 1 column FatMatrices whose
// inner shapes are G1^{2x1} (fm) and G2^{2x1} (other), into the 2x2 GT
// matrix sum_{i=1..n} F(pr, fm(i,1), other(i,1)). It is the FatMatrix-level
// analogue of F, used by provers/verifiers to reduce a column of committed
// vectors against a column of CRS or proof elements.
func (fm *FatMatrix) FatPoint(pr pairing.Pairing, other *FatMatrix) (*Matrix, error) {
	if fm.cols != 1 || other.cols != 1 || fm.rows != other.rows {
		return nil, fmt.Errorf("%w: FatPoint requires matching nx1 column fat matrices, got %dx%d and %dx%d", ErrDimensionMismatch, fm.rows, fm.cols, other.rows, other.cols)
	}
	gt := pr.GT()
	acc := New(2, 2, gt)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			acc.cells[i][j] = gt.Zero()
		}
	}
	for i := 1; i <= fm.rows; i++ {
		left, err := fm.At(i, 1)
		if err != nil {
			return nil, err
		}
		right, err := other.At(i, 1)
		if err != nil {
			return nil, err
		}
		term, err := F(pr, left, right)
		if err != nil {
			return nil, fmt.Errorf("matrix: FatPoint: %w", err)
		}
		acc, err = acc.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
