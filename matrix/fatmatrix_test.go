package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzela/groth-sahai/pairing"
	_ "github.com/arzela/groth-sahai/pairing/bn254"
)

func testPairing(t *testing.T) pairing.Pairing {
	t.Helper()
	pr, err := pairing.Lookup("bn254")
	require.NoError(t, err)
	return pr
}

func g1Column(t *testing.T, pr pairing.Pairing, top, bottom pairing.Element) *Matrix {
	t.Helper()
	m := New(2, 1, pr.G1())
	require.NoError(t, m.Set(1, 1, top))
	require.NoError(t, m.Set(2, 1, bottom))
	return m
}

func g2Column(t *testing.T, pr pairing.Pairing, top, bottom pairing.Element) *Matrix {
	t.Helper()
	m := New(2, 1, pr.G2())
	require.NoError(t, m.Set(1, 1, top))
	require.NoError(t, m.Set(2, 1, bottom))
	return m
}

func TestFBilinearity(t *testing.T) {
	pr := testPairing(t)
	g1a, err := pr.G1().Random()
	require.NoError(t, err)
	g1b, err := pr.G1().Random()
	require.NoError(t, err)
	g2a, err := pr.G2().Random()
	require.NoError(t, err)
	g2b, err := pr.G2().Random()
	require.NoError(t, err)

	A := g1Column(t, pr, g1a, g1b)
	B := g2Column(t, pr, g2a, g2b)

	R, err := F(pr, A, B)
	require.NoError(t, err)
	require.Equal(t, 2, R.Rows())
	require.Equal(t, 2, R.Cols())

	want11, err := pr.Pair(g1a, g2a)
	require.NoError(t, err)
	got11, err := R.At(1, 1)
	require.NoError(t, err)
	require.True(t, got11.IsEqual(want11))

	want22, err := pr.Pair(g1b, g2b)
	require.NoError(t, err)
	got22, err := R.At(2, 2)
	require.NoError(t, err)
	require.True(t, got22.IsEqual(want22))
}

func TestFatPointSumsOverColumns(t *testing.T) {
	pr := testPairing(t)

	a1, err := pr.G1().Random()
	require.NoError(t, err)
	a2, err := pr.G1().Random()
	require.NoError(t, err)
	b1, err := pr.G2().Random()
	require.NoError(t, err)
	b2, err := pr.G2().Random()
	require.NoError(t, err)

	colA1 := g1Column(t, pr, a1, a1)
	colA2 := g1Column(t, pr, a2, a2)
	colB1 := g2Column(t, pr, b1, b1)
	colB2 := g2Column(t, pr, b2, b2)

	fm := NewFat(2, 1, 2, 1, pr.G1())
	require.NoError(t, fm.Set(1, 1, colA1))
	require.NoError(t, fm.Set(2, 1, colA2))

	other := NewFat(2, 1, 2, 1, pr.G2())
	require.NoError(t, other.Set(1, 1, colB1))
	require.NoError(t, other.Set(2, 1, colB2))

	got, err := fm.FatPoint(pr, other)
	require.NoError(t, err)

	t1, err := F(pr, colA1, colB1)
	require.NoError(t, err)
	t2, err := F(pr, colA2, colB2)
	require.NoError(t, err)
	want, err := t1.Add(t2)
	require.NoError(t, err)
	require.True(t, got.IsEqual(want))
}

func TestFatMatrixAddSub(t *testing.T) {
	pr := testPairing(t)
	zr := pr.Zr()

	a := NewFat(2, 2, 1, 1, zr)
	b := NewFat(2, 2, 1, 1, zr)
	for i := 1; i <= 2; i++ {
		for j := 1; j <= 2; j++ {
			cellA := New(1, 1, zr)
			require.NoError(t, cellA.Set(1, 1, elemFromInt64(t, zr, int64(i+j))))
			require.NoError(t, a.Set(i, j, cellA))

			cellB := New(1, 1, zr)
			require.NoError(t, cellB.Set(1, 1, elemFromInt64(t, zr, int64(i*j))))
			require.NoError(t, b.Set(i, j, cellB))
		}
	}

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)
	require.True(t, back.IsEqual(a))
}

func TestFatMatrixBytesRequiresGroupID(t *testing.T) {
	pr := testPairing(t)
	fm := NewFat(1, 1, 2, 1, pr.G1())
	_, err := fm.Bytes()
	require.ErrorIs(t, err, ErrGroupIDMissing)

	require.NoError(t, fm.SetGroupID("G1"))
	data, err := fm.Bytes()
	require.NoError(t, err)

	back := NewFat(1, 1, 2, 1, pr.G1())
	require.NoError(t, back.SetFromBytes(data))
	require.True(t, back.IsEqual(fm))
}
