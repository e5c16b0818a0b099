package gs

import (
	"fmt"

	"github.com/arzela/groth-sahai/matrix"
)

// PPEEquation is a pairing-product equation
// Sum_i e(A_i, Y_i) + Sum_i e(X_i, B_i) + Sum_{i,j} e(X_i, Y_j)*Gamma_ij = 1_GT
// over committed X in G1^n and Y in G2^m.
type PPEEquation struct {
	A     *matrix.Matrix // G1, m x 1
	B     *matrix.Matrix // G2, n x 1
	Gamma *matrix.Matrix // Zr, n x m
}

// ProvePPE computes the proof (pi, theta) that committed X, Y (with
// commitment randomness R, S) satisfy eq. T is the 2x2 Zr proof
// randomness; sampled uniformly when nil.
func (s *Scheme) ProvePPE(eq PPEEquation, X, Y, R, S, T *matrix.Matrix) (pi, theta *matrix.FatMatrix, err error) {
	T, err = randomZr(s, 2, 2, T)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}

	Rt := R.Transpose()
	St := S.Transpose()
	Tt := T.Transpose()
	gammaT := eq.Gamma.Transpose()

	fatB := iota(eq.B)
	fatY := iota(Y)
	fatA := iota(eq.A)
	fatX := iota(X)

	term1pi, err := Rt.MulFat(fatB)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	RtGamma, err := Rt.Mul(eq.Gamma)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	term2pi, err := RtGamma.MulFat(fatY)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	sum12pi, err := term1pi.Add(term2pi)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	RtGammaS, err := RtGamma.Mul(S)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	coeffPi, err := RtGammaS.Sub(Tt)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	term3pi, err := coeffPi.MulFat(s.CRS.V())
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	pi, err = sum12pi.Add(term3pi)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}

	term1theta, err := St.MulFat(fatA)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	StGammaT, err := St.Mul(gammaT)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	term2theta, err := StGammaT.MulFat(fatX)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	sum12theta, err := term1theta.Add(term2theta)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	term3theta, err := T.MulFat(s.CRS.U())
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}
	theta, err = sum12theta.Add(term3theta)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProvePPE: %w", err)
	}

	return pi, theta, nil
}

// VerifyPPE checks that commitments c (to X) and d (to Y) satisfy eq under
// proof (pi, theta).
func (s *Scheme) VerifyPPE(eq PPEEquation, c, d, pi, theta *matrix.FatMatrix) (bool, error) {
	pr := s.CRS.Pairing()

	fatA := iota(eq.A)
	fatB := iota(eq.B)

	term1, err := fatA.FatPoint(pr, d)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyPPE: %w", err)
	}
	term2, err := c.FatPoint(pr, fatB)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyPPE: %w", err)
	}
	gammaD, err := eq.Gamma.MulFat(d)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyPPE: %w", err)
	}
	term3, err := c.FatPoint(pr, gammaD)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyPPE: %w", err)
	}
	lhs, err := term1.Add(term2)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyPPE: %w", err)
	}
	lhs, err = lhs.Add(term3)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyPPE: %w", err)
	}

	rhs1, err := s.CRS.U().FatPoint(pr, pi)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyPPE: %w", err)
	}
	rhs2, err := theta.FatPoint(pr, s.CRS.V())
	if err != nil {
		return false, fmt.Errorf("gs: VerifyPPE: %w", err)
	}
	rhs, err := rhs1.Add(rhs2)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyPPE: %w", err)
	}

	return lhs.IsEqual(rhs), nil
}
