package gs

import (
	"fmt"

	"github.com/arzela/groth-sahai/matrix"
	"github.com/arzela/groth-sahai/pairing"
)

// QuadraticEquation is a quadratic equation entirely over Zr:
// Sum_i x_i.b_i + Sum_j a_j.y_j + Sum_ij gamma_ij.x_i.y_j = 0.
type QuadraticEquation struct {
	AConst *matrix.Matrix // Zr, m x 1 (paired with y)
	BConst *matrix.Matrix // Zr, n x 1 (paired with x)
	Gamma  *matrix.Matrix // Zr, n x m
}

// ProveQuadratic computes the proof (pi, theta) that committed x
// (randomness r, via CommitPrimeG1) and committed y (randomness sRand, via
// CommitPrimeG2) satisfy eq. T, the Zr proof randomness, is sampled
// uniformly when nil. Both pi and theta are flat 2x1 matrices (over G2,
// G1 respectively): a quadratic equation never needs a FatMatrix-valued
// proof component.
func (s *Scheme) ProveQuadratic(eq QuadraticEquation, x, y, r, sRand *matrix.Matrix, T pairing.Element) (pi, theta *matrix.Matrix, err error) {
	zr := s.CRS.Zr()
	if T == nil {
		T, err = zr.Random()
		if err != nil {
			return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
		}
	}

	rt := r.Transpose()
	st := sRand.Transpose()

	bPrime, err := iotaPrimeCol(s.CRS.V2(), s.CRS.H(), eq.BConst)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	yPrime, err := iotaPrimeCol(s.CRS.V2(), s.CRS.H(), y)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	aPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), eq.AConst)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	xPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), x)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}

	term1piFat, err := rt.MulFat(bPrime)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	term1pi, err := term1piFat.Flatten()
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	rtGamma, err := rt.Mul(eq.Gamma)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	term2piFat, err := rtGamma.MulFat(yPrime)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	term2pi, err := term2piFat.Flatten()
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	rtGammaSFat, err := rtGamma.Mul(sRand)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	rtGammaS, err := rtGammaSFat.Flatten()
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	coeff := zr.NewElement().Sub(rtGammaS, T)
	term3pi, err := s.CRS.V1().MulZn(coeff)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}

	pi, err = term1pi.Add(term2pi)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	pi, err = pi.Add(term3pi)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}

	term1thetaFat, err := st.MulFat(aPrime)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	term1theta, err := term1thetaFat.Flatten()
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	stGamma, err := st.Mul(eq.Gamma.Transpose())
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	term2thetaFat, err := stGamma.MulFat(xPrime)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	term2theta, err := term2thetaFat.Flatten()
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	term3theta, err := s.CRS.U1().MulZn(T)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}

	theta, err = term1theta.Add(term2theta)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}
	theta, err = theta.Add(term3theta)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveQuadratic: %w", err)
	}

	return pi, theta, nil
}

// VerifyQuadratic checks that commitment e (to x, via CommitPrimeG1) and d
// (to y, via CommitPrimeG2) satisfy eq under proof (pi, theta).
func (s *Scheme) VerifyQuadratic(eq QuadraticEquation, e, d *matrix.FatMatrix, pi, theta *matrix.Matrix) (bool, error) {
	pr := s.CRS.Pairing()

	bPrime, err := iotaPrimeCol(s.CRS.V2(), s.CRS.H(), eq.BConst)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}
	aPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), eq.AConst)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}

	term1, err := e.FatPoint(pr, bPrime)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}
	term2, err := aPrime.FatPoint(pr, d)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}
	gammaD, err := eq.Gamma.MulFat(d)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}
	term3, err := e.FatPoint(pr, gammaD)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}
	lhs, err := term1.Add(term2)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}
	lhs, err = lhs.Add(term3)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}

	rhs1, err := matrix.F(pr, s.CRS.U1(), pi)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}
	rhs2, err := matrix.F(pr, theta, s.CRS.V1())
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}
	rhs, err := rhs1.Add(rhs2)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyQuadratic: %w", err)
	}

	return lhs.IsEqual(rhs), nil
}
