package gs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzela/groth-sahai/crs"
	"github.com/arzela/groth-sahai/matrix"
	"github.com/arzela/groth-sahai/pairing"
	_ "github.com/arzela/groth-sahai/pairing/bn254"
)

func testScheme(t *testing.T) *Scheme {
	t.Helper()
	c, err := crs.Generate("bn254")
	require.NoError(t, err)
	return New(c)
}

func zeroCol(rows int, field pairing.Field) *matrix.Matrix {
	m := matrix.New(rows, 1, field)
	for i := 1; i <= rows; i++ {
		_ = m.Set(i, 1, field.Zero())
	}
	return m
}

func zeroMat(rows, cols int, field pairing.Field) *matrix.Matrix {
	m := matrix.New(rows, cols, field)
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			_ = m.Set(i, j, field.Zero())
		}
	}
	return m
}

func randomCol(t *testing.T, rows int, field pairing.Field) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewRandom(rows, 1, field)
	require.NoError(t, err)
	return m
}

// TestCommitG1HidesWitness checks that two commitments to the same X, with
// independent randomness, differ — commitments must not be deterministic.
func TestCommitG1HidesWitness(t *testing.T) {
	s := testScheme(t)
	X := randomCol(t, 2, s.CRS.G1())

	c1, _, err := s.CommitG1(X, nil)
	require.NoError(t, err)
	c2, _, err := s.CommitG1(X, nil)
	require.NoError(t, err)

	require.False(t, c1.IsEqual(c2))
}

// TestCommitPrimeG1RoundTrip exercises CommitPrimeG1 with explicit
// randomness, confirming the commitment reproduces deterministically given
// the same randomness.
func TestCommitPrimeG1RoundTrip(t *testing.T) {
	s := testScheme(t)
	zr := s.CRS.Zr()
	z := randomCol(t, 3, zr)
	t0 := randomCol(t, 3, zr)

	c1, usedT, err := s.CommitPrimeG1(z, t0)
	require.NoError(t, err)
	require.True(t, usedT.IsEqual(t0))

	c2, _, err := s.CommitPrimeG1(z, t0)
	require.NoError(t, err)
	require.True(t, c1.IsEqual(c2))
}

// TestCommitG1RejectsWrongDomain checks that CommitG1 refuses a Zr matrix
// passed in place of a G1 witness.
func TestCommitG1RejectsWrongDomain(t *testing.T) {
	s := testScheme(t)
	notG1 := randomCol(t, 2, s.CRS.Zr())
	_, _, err := s.CommitG1(notG1, nil)
	require.True(t, errors.Is(err, ErrWitnessShape))
}

// TestPPERoundTrip exercises Commit/Prove/Verify for a pairing-product
// equation with all-zero constants: the equation Sum e(0,Y)+Sum e(X,0)+
// Sum e(X,Y)*0 = 1_GT holds for any X, Y, so an honest proof over freshly
// committed, nonzero witnesses must verify.
func TestPPERoundTrip(t *testing.T) {
	s := testScheme(t)
	g1, g2 := s.CRS.G1(), s.CRS.G2()

	X := randomCol(t, 2, g1)
	Y := randomCol(t, 2, g2)
	eq := PPEEquation{
		A:     zeroCol(2, g1),
		B:     zeroCol(2, g2),
		Gamma: zeroMat(2, 2, s.CRS.Zr()),
	}

	c, R, err := s.CommitG1(X, nil)
	require.NoError(t, err)
	d, Sm, err := s.CommitG2(Y, nil)
	require.NoError(t, err)

	pi, theta, err := s.ProvePPE(eq, X, Y, R, Sm, nil)
	require.NoError(t, err)

	ok, err := s.VerifyPPE(eq, c, d, pi, theta)
	require.NoError(t, err)
	require.True(t, ok)
}

// buildNonDegenerateEquation constructs e(G, Y1) * e(X1, Y2) = 1, i.e.
// A = (G, 0), B = (0, 0), gamma = [[0, 1], [0, 0]] — the Gamma-weighted
// cross-term is the only nonzero one, so satisfying it constrains X1/Y1
// against each other rather than being trivially true for any witness.
func buildNonDegenerateEquation(s *Scheme) PPEEquation {
	g1, g2, zr := s.CRS.G1(), s.CRS.G2(), s.CRS.Zr()

	A := matrix.New(2, 1, g1)
	_ = A.Set(1, 1, s.CRS.G())
	_ = A.Set(2, 1, g1.Zero())

	gamma := matrix.New(2, 2, zr)
	_ = gamma.Set(1, 1, zr.Zero())
	_ = gamma.Set(1, 2, zr.One())
	_ = gamma.Set(2, 1, zr.Zero())
	_ = gamma.Set(2, 2, zr.Zero())

	return PPEEquation{A: A, B: zeroCol(2, g2), Gamma: gamma}
}

// TestPPENonDegenerateRoundTrip exercises e(G,Y1)*e(X1,Y2)=1 with a witness
// pair that actually constrains X1 against Y1: Y1 = y1.H, X1 = (-y1).G,
// Y2 = H, so e(G,Y1) and e(X1,Y2) cancel. X2 is unconstrained free witness.
func TestPPENonDegenerateRoundTrip(t *testing.T) {
	s := testScheme(t)
	g1, g2, zr := s.CRS.G1(), s.CRS.G2(), s.CRS.Zr()
	eq := buildNonDegenerateEquation(s)

	y1, err := zr.Random()
	require.NoError(t, err)
	negY1 := zr.NewElement().Sub(zr.Zero(), y1)

	X := matrix.New(2, 1, g1)
	require.NoError(t, X.Set(1, 1, g1.NewElement().MulZn(s.CRS.G(), negY1)))
	x2, err := g1.Random()
	require.NoError(t, err)
	require.NoError(t, X.Set(2, 1, x2))

	Y := matrix.New(2, 1, g2)
	require.NoError(t, Y.Set(1, 1, g2.NewElement().MulZn(s.CRS.H(), y1)))
	require.NoError(t, Y.Set(2, 1, s.CRS.H()))

	c, R, err := s.CommitG1(X, nil)
	require.NoError(t, err)
	d, Sm, err := s.CommitG2(Y, nil)
	require.NoError(t, err)

	pi, theta, err := s.ProvePPE(eq, X, Y, R, Sm, nil)
	require.NoError(t, err)

	ok, err := s.VerifyPPE(eq, c, d, pi, theta)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestPPENonDegenerateRoundTripRejectsUnsatisfyingWitness checks that
// replacing X1 with an unrelated random element, breaking the relation,
// makes the verifier return false.
func TestPPENonDegenerateRoundTripRejectsUnsatisfyingWitness(t *testing.T) {
	s := testScheme(t)
	g1, g2, zr := s.CRS.G1(), s.CRS.G2(), s.CRS.Zr()
	eq := buildNonDegenerateEquation(s)

	y1, err := zr.Random()
	require.NoError(t, err)

	X := matrix.New(2, 1, g1)
	x1, err := g1.Random()
	require.NoError(t, err)
	require.NoError(t, X.Set(1, 1, x1))
	x2, err := g1.Random()
	require.NoError(t, err)
	require.NoError(t, X.Set(2, 1, x2))

	Y := matrix.New(2, 1, g2)
	require.NoError(t, Y.Set(1, 1, g2.NewElement().MulZn(s.CRS.H(), y1)))
	require.NoError(t, Y.Set(2, 1, s.CRS.H()))

	c, R, err := s.CommitG1(X, nil)
	require.NoError(t, err)
	d, Sm, err := s.CommitG2(Y, nil)
	require.NoError(t, err)

	pi, theta, err := s.ProvePPE(eq, X, Y, R, Sm, nil)
	require.NoError(t, err)

	ok, err := s.VerifyPPE(eq, c, d, pi, theta)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestPPERoundTripRejectsTamperedCommitment confirms the verifier rejects a
// proof checked against a commitment it was not produced for.
func TestPPERoundTripRejectsTamperedCommitment(t *testing.T) {
	s := testScheme(t)
	g1, g2 := s.CRS.G1(), s.CRS.G2()

	X := randomCol(t, 2, g1)
	Y := randomCol(t, 2, g2)
	eq := PPEEquation{
		A:     zeroCol(2, g1),
		B:     zeroCol(2, g2),
		Gamma: zeroMat(2, 2, s.CRS.Zr()),
	}

	c, R, err := s.CommitG1(X, nil)
	require.NoError(t, err)
	d, Sm, err := s.CommitG2(Y, nil)
	require.NoError(t, err)

	pi, theta, err := s.ProvePPE(eq, X, Y, R, Sm, nil)
	require.NoError(t, err)

	otherX := randomCol(t, 2, g1)
	otherC, _, err := s.CommitG1(otherX, nil)
	require.NoError(t, err)

	ok, err := s.VerifyPPE(eq, otherC, d, pi, theta)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestMSMG1RoundTrip exercises MSM-G1: X committed in G1, y committed in
// Zr via CommitPrimeG2 (the Zr witness acting on the G2 side), with
// all-zero constants.
func TestMSMG1RoundTrip(t *testing.T) {
	s := testScheme(t)
	g1, zr := s.CRS.G1(), s.CRS.Zr()

	X := randomCol(t, 2, g1)
	y := randomCol(t, 2, zr)
	eq := MSMG1Equation{
		AConst: zeroCol(2, g1),
		BConst: zeroCol(2, zr),
		Gamma:  zeroMat(2, 2, zr),
	}

	c, R, err := s.CommitG1(X, nil)
	require.NoError(t, err)
	e, Sm, err := s.CommitPrimeG2(y, nil)
	require.NoError(t, err)

	pi, theta, err := s.ProveMSMG1(eq, X, y, R, Sm, nil)
	require.NoError(t, err)

	ok, err := s.VerifyMSMG1(eq, c, e, pi, theta)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestMSMG2RoundTrip exercises MSM-G2, the G1/G2-dual of MSMG1: Y
// committed in G2, x committed in Zr via CommitPrimeG1.
func TestMSMG2RoundTrip(t *testing.T) {
	s := testScheme(t)
	g2, zr := s.CRS.G2(), s.CRS.Zr()

	Y := randomCol(t, 2, g2)
	x := randomCol(t, 2, zr)
	eq := MSMG2Equation{
		AConst: zeroCol(2, g2),
		BConst: zeroCol(2, zr),
		Gamma:  zeroMat(2, 2, zr),
	}

	d, R, err := s.CommitG2(Y, nil)
	require.NoError(t, err)
	e, Sm, err := s.CommitPrimeG1(x, nil)
	require.NoError(t, err)

	pi, theta, err := s.ProveMSMG2(eq, Y, x, R, Sm, nil)
	require.NoError(t, err)

	ok, err := s.VerifyMSMG2(eq, d, e, pi, theta)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestQuadraticRoundTrip exercises the entirely-Zr quadratic equation
// family: x committed via CommitPrimeG1, y via CommitPrimeG2.
func TestQuadraticRoundTrip(t *testing.T) {
	s := testScheme(t)
	zr := s.CRS.Zr()

	x := randomCol(t, 2, zr)
	y := randomCol(t, 2, zr)
	eq := QuadraticEquation{
		AConst: zeroCol(2, zr),
		BConst: zeroCol(2, zr),
		Gamma:  zeroMat(2, 2, zr),
	}

	e, r, err := s.CommitPrimeG1(x, nil)
	require.NoError(t, err)
	d, sRand, err := s.CommitPrimeG2(y, nil)
	require.NoError(t, err)

	pi, theta, err := s.ProveQuadratic(eq, x, y, r, sRand, nil)
	require.NoError(t, err)

	ok, err := s.VerifyQuadratic(eq, e, d, pi, theta)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestLinearG1MSMRoundTrip exercises Sum b_i.X_i = 0 with b = 0.
func TestLinearG1MSMRoundTrip(t *testing.T) {
	s := testScheme(t)
	g1 := s.CRS.G1()

	X := randomCol(t, 2, g1)
	eq := LinearG1MSMEquation{BConst: zeroCol(2, s.CRS.Zr())}

	c, R, err := s.CommitG1(X, nil)
	require.NoError(t, err)

	pi, err := s.ProveLinearG1MSM(eq, R)
	require.NoError(t, err)

	ok, err := s.VerifyLinearG1MSM(eq, c, pi)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestLinearZrMSMG1RoundTrip exercises Sum y_j.A_j = 0 with A = 0.
func TestLinearZrMSMG1RoundTrip(t *testing.T) {
	s := testScheme(t)
	g1, zr := s.CRS.G1(), s.CRS.Zr()

	y := randomCol(t, 2, zr)
	eq := LinearZrMSMG1Equation{AConst: zeroCol(2, g1)}

	d, sRand, err := s.CommitPrimeG2(y, nil)
	require.NoError(t, err)

	theta, err := s.ProveLinearZrMSMG1(eq, sRand)
	require.NoError(t, err)

	ok, err := s.VerifyLinearZrMSMG1(eq, d, theta)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestLinearG2MSMRoundTrip exercises Sum a_i.Y_i = 0 with a = 0.
func TestLinearG2MSMRoundTrip(t *testing.T) {
	s := testScheme(t)
	g2 := s.CRS.G2()

	Y := randomCol(t, 2, g2)
	eq := LinearG2MSMEquation{AConst: zeroCol(2, s.CRS.Zr())}

	d, S, err := s.CommitG2(Y, nil)
	require.NoError(t, err)

	theta, err := s.ProveLinearG2MSM(eq, S)
	require.NoError(t, err)

	ok, err := s.VerifyLinearG2MSM(eq, d, theta)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestLinearZrMSMG2RoundTrip exercises Sum B_i.x_i = 0 with B = 0.
func TestLinearZrMSMG2RoundTrip(t *testing.T) {
	s := testScheme(t)
	g2, zr := s.CRS.G2(), s.CRS.Zr()

	x := randomCol(t, 2, zr)
	eq := LinearZrMSMG2Equation{BConst: zeroCol(2, g2)}

	e, r, err := s.CommitPrimeG1(x, nil)
	require.NoError(t, err)

	pi, err := s.ProveLinearZrMSMG2(eq, r)
	require.NoError(t, err)

	ok, err := s.VerifyLinearZrMSMG2(eq, e, pi)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestLinearQuadraticRoundTrip exercises Sum a_i.y_i = 0 with a = 0.
func TestLinearQuadraticRoundTrip(t *testing.T) {
	s := testScheme(t)
	zr := s.CRS.Zr()

	y := randomCol(t, 2, zr)
	eq := LinearQuadraticEquation{AConst: zeroCol(2, zr)}

	d, sRand, err := s.CommitPrimeG2(y, nil)
	require.NoError(t, err)

	theta, err := s.ProveLinearQuadratic(eq, sRand)
	require.NoError(t, err)

	ok, err := s.VerifyLinearQuadratic(eq, d, theta)
	require.NoError(t, err)
	require.True(t, ok)
}
