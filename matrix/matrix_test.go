package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzela/groth-sahai/pairing"
	_ "github.com/arzela/groth-sahai/pairing/bn254"
)

func testZr(t *testing.T) pairing.Field {
	t.Helper()
	pr, err := pairing.Lookup("bn254")
	require.NoError(t, err)
	return pr.Zr()
}

func elemFromInt64(t *testing.T, f pairing.Field, v int64) pairing.Element {
	t.Helper()
	if v < 0 {
		t.Fatal("elemFromInt64: negative not supported by this helper")
	}
	one := f.One()
	acc := f.Zero()
	for i := int64(0); i < v; i++ {
		acc = f.NewElement().Add(acc, one)
	}
	return acc
}

func TestMatrixAddSub(t *testing.T) {
	zr := testZr(t)
	a := New(2, 2, zr)
	b := New(2, 2, zr)
	require.NoError(t, a.Set(1, 1, elemFromInt64(t, zr, 1)))
	require.NoError(t, a.Set(1, 2, elemFromInt64(t, zr, 2)))
	require.NoError(t, a.Set(2, 1, elemFromInt64(t, zr, 3)))
	require.NoError(t, a.Set(2, 2, elemFromInt64(t, zr, 4)))
	require.NoError(t, b.Set(1, 1, elemFromInt64(t, zr, 5)))
	require.NoError(t, b.Set(1, 2, elemFromInt64(t, zr, 6)))
	require.NoError(t, b.Set(2, 1, elemFromInt64(t, zr, 7)))
	require.NoError(t, b.Set(2, 2, elemFromInt64(t, zr, 8)))

	sum, err := a.Add(b)
	require.NoError(t, err)
	want := New(2, 2, zr)
	require.NoError(t, want.Set(1, 1, elemFromInt64(t, zr, 6)))
	require.NoError(t, want.Set(1, 2, elemFromInt64(t, zr, 8)))
	require.NoError(t, want.Set(2, 1, elemFromInt64(t, zr, 10)))
	require.NoError(t, want.Set(2, 2, elemFromInt64(t, zr, 12)))
	require.True(t, sum.IsEqual(want))

	back, err := sum.Sub(b)
	require.NoError(t, err)
	require.True(t, back.IsEqual(a))
}

func TestMatrixAddShapeMismatch(t *testing.T) {
	zr := testZr(t)
	a := New(2, 2, zr)
	b := New(2, 3, zr)
	_, err := a.Add(b)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestMatrixMul(t *testing.T) {
	zr := testZr(t)
	a := New(1, 2, zr)
	require.NoError(t, a.Set(1, 1, elemFromInt64(t, zr, 2)))
	require.NoError(t, a.Set(1, 2, elemFromInt64(t, zr, 3)))
	b := New(2, 1, zr)
	require.NoError(t, b.Set(1, 1, elemFromInt64(t, zr, 5)))
	require.NoError(t, b.Set(2, 1, elemFromInt64(t, zr, 7)))

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 1, prod.Rows())
	require.Equal(t, 1, prod.Cols())
	want := elemFromInt64(t, zr, 2*5+3*7)
	got, err := prod.Flatten()
	require.NoError(t, err)
	require.True(t, got.IsEqual(want))
}

func TestMatrixTransposeInvolution(t *testing.T) {
	zr := testZr(t)
	a := New(2, 3, zr)
	for i := 1; i <= 2; i++ {
		for j := 1; j <= 3; j++ {
			require.NoError(t, a.Set(i, j, elemFromInt64(t, zr, int64(i*10+j))))
		}
	}
	tt := a.Transpose().Transpose()
	require.True(t, a.IsEqual(tt))
}

func TestMatrixWithRowIsPure(t *testing.T) {
	zr := testZr(t)
	a := New(2, 2, zr)
	require.NoError(t, a.Set(1, 1, elemFromInt64(t, zr, 1)))
	require.NoError(t, a.Set(1, 2, elemFromInt64(t, zr, 2)))
	require.NoError(t, a.Set(2, 1, elemFromInt64(t, zr, 3)))
	require.NoError(t, a.Set(2, 2, elemFromInt64(t, zr, 4)))

	row := New(1, 2, zr)
	require.NoError(t, row.Set(1, 1, elemFromInt64(t, zr, 9)))
	require.NoError(t, row.Set(1, 2, elemFromInt64(t, zr, 9)))

	replaced, err := a.WithRow(1, row)
	require.NoError(t, err)

	orig := elemFromInt64(t, zr, 1)
	cur, err := a.At(1, 1)
	require.NoError(t, err)
	require.True(t, cur.IsEqual(orig), "WithRow must not mutate the receiver")

	got, err := replaced.At(1, 1)
	require.NoError(t, err)
	require.True(t, got.IsEqual(elemFromInt64(t, zr, 9)))
}

func TestMatrixFlattenShapeGuard(t *testing.T) {
	zr := testZr(t)
	a := New(1, 2, zr)
	_, err := a.Flatten()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFlattenShape))
}

func TestMatrixBytesRoundTrip(t *testing.T) {
	zr := testZr(t)
	a := New(2, 2, zr)
	for i := 1; i <= 2; i++ {
		for j := 1; j <= 2; j++ {
			require.NoError(t, a.Set(i, j, elemFromInt64(t, zr, int64(i+j))))
		}
	}
	data := a.Bytes()
	b := New(2, 2, zr)
	require.NoError(t, b.SetFromBytes(data))
	require.True(t, a.IsEqual(b))
}

func literalMatrix(t *testing.T, f pairing.Field, rows [][]int64) *Matrix {
	t.Helper()
	m := New(len(rows), len(rows[0]), f)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i+1, j+1, elemFromInt64(t, f, v)))
		}
	}
	return m
}

func TestMatrixAddLiteralScenario(t *testing.T) {
	zr := testZr(t)
	a := literalMatrix(t, zr, [][]int64{{3, 7}, {56, 14}, {23, 19}})
	b := literalMatrix(t, zr, [][]int64{{14, 94}, {26, 59}, {345, 23}})
	want := literalMatrix(t, zr, [][]int64{{17, 101}, {82, 73}, {368, 42}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.IsEqual(want))
}

func TestMatrixMultiplyLiteralScenario(t *testing.T) {
	zr := testZr(t)
	a := literalMatrix(t, zr, [][]int64{{3, 7}, {56, 14}, {23, 19}})
	b := literalMatrix(t, zr, [][]int64{{14, 94, 26}, {59, 345, 23}})

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 3, prod.Rows())
	require.Equal(t, 3, prod.Cols())

	c11, err := prod.At(1, 1)
	require.NoError(t, err)
	require.True(t, c11.IsEqual(elemFromInt64(t, zr, 455)))

	c23, err := prod.At(2, 3)
	require.NoError(t, err)
	require.True(t, c23.IsEqual(elemFromInt64(t, zr, 1778)))
}

func TestMatrixScalarMultiplyLiteralScenario(t *testing.T) {
	zr := testZr(t)
	a := literalMatrix(t, zr, [][]int64{{3, 7}, {56, 14}, {23, 19}})
	scalar := elemFromInt64(t, zr, 81)

	scaled, err := a.MulZn(scalar)
	require.NoError(t, err)

	c11, err := scaled.At(1, 1)
	require.NoError(t, err)
	require.True(t, c11.IsEqual(elemFromInt64(t, zr, 243)))

	c32, err := scaled.At(3, 2)
	require.NoError(t, err)
	require.True(t, c32.IsEqual(elemFromInt64(t, zr, 1539)))
}

func TestMatrixAddFieldMismatch(t *testing.T) {
	pr, err := pairing.Lookup("bn254")
	require.NoError(t, err)
	a := New(3, 2, pr.Zr())
	b := New(3, 2, pr.G1())
	_, err = a.Add(b)
	require.True(t, errors.Is(err, ErrFieldMismatch))
}

func TestMatrixIndexOutOfRange(t *testing.T) {
	zr := testZr(t)
	a := New(2, 2, zr)
	_, err := a.At(0, 1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = a.At(3, 1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
}
