package gs

import (
	"fmt"

	"github.com/arzela/groth-sahai/matrix"
)

// MSMG1Equation is a multi-scalar-multiplication equation over a committed
// G1 vector X and a committed Zr vector y:
// Sum_i b_i.X_i + Sum_j y_j.A_j + Sum_ij gamma_ij.y_j.X_i = 0_G1.
type MSMG1Equation struct {
	AConst *matrix.Matrix // G1, m x 1
	BConst *matrix.Matrix // Zr, n x 1
	Gamma  *matrix.Matrix // Zr, n x m
}

// ProveMSMG1 computes the proof (pi, theta) that committed X (randomness R)
// and committed y (randomness s) satisfy eq. T, the 1x2 Zr proof
// randomness, is sampled uniformly when nil. pi is a 2x1 FatMatrix over
// G2; theta is the flat 2x1 G1 matrix Flatten(...) yields.
func (s *Scheme) ProveMSMG1(eq MSMG1Equation, X, y, R, sRand, T *matrix.Matrix) (pi *matrix.FatMatrix, theta *matrix.Matrix, err error) {
	T, err = randomZr(s, 1, 2, T)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}

	Rt := R.Transpose()
	st := sRand.Transpose()
	Tt := T.Transpose()
	gammaT := eq.Gamma.Transpose()

	bPrime, err := iotaPrimeCol(s.CRS.V2(), s.CRS.H(), eq.BConst)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	yPrime, err := iotaPrimeCol(s.CRS.V2(), s.CRS.H(), y)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	fatA := iota(eq.AConst)
	fatX := iota(X)

	term1pi, err := Rt.MulFat(bPrime)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	RtGamma, err := Rt.Mul(eq.Gamma)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	term2pi, err := RtGamma.MulFat(yPrime)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	sum12, err := term1pi.Add(term2pi)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	RtGammaS, err := RtGamma.Mul(sRand)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	coeff, err := RtGammaS.Sub(Tt)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	v1Fat := matrix.NewFat(1, 1, 2, 1, s.CRS.G2())
	if err := v1Fat.Set(1, 1, s.CRS.V1()); err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	term3pi, err := coeff.MulFat(v1Fat)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	pi, err = sum12.Add(term3pi)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}

	term1theta, err := st.MulFat(fatA)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	stGammaT, err := st.Mul(gammaT)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	term2theta, err := stGammaT.MulFat(fatX)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	sum12theta, err := term1theta.Add(term2theta)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	term3theta, err := T.MulFat(s.CRS.U())
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	thetaFat, err := sum12theta.Add(term3theta)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}
	theta, err = thetaFat.Flatten()
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG1: %w", err)
	}

	return pi, theta, nil
}

// VerifyMSMG1 checks that commitment c (to X) and e (to y, via
// CommitPrimeG2) satisfy eq under proof (pi, theta).
func (s *Scheme) VerifyMSMG1(eq MSMG1Equation, c, e *matrix.FatMatrix, pi *matrix.FatMatrix, theta *matrix.Matrix) (bool, error) {
	pr := s.CRS.Pairing()

	fatA := iota(eq.AConst)
	bPrime, err := iotaPrimeCol(s.CRS.V2(), s.CRS.H(), eq.BConst)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}

	term1, err := fatA.FatPoint(pr, e)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}
	term2, err := c.FatPoint(pr, bPrime)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}
	gammaE, err := eq.Gamma.MulFat(e)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}
	term3, err := c.FatPoint(pr, gammaE)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}
	lhs, err := term1.Add(term2)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}
	lhs, err = lhs.Add(term3)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}

	rhs1, err := s.CRS.U().FatPoint(pr, pi)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}
	rhs2, err := matrix.F(pr, theta, s.CRS.V1())
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}
	rhs, err := rhs1.Add(rhs2)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG1: %w", err)
	}

	return lhs.IsEqual(rhs), nil
}

// MSMG2Equation is the G1/G2-dual of MSMG1Equation: a committed G2 vector
// Y (n x 1) and a committed Zr vector x (m x 1):
// Sum_i Y_i.B_i + Sum_j x_j.A_j + Sum_ij gamma_ij.x_j.Y_i = 0_G2.
type MSMG2Equation struct {
	AConst *matrix.Matrix // G2, m x 1
	BConst *matrix.Matrix // Zr, n x 1
	Gamma  *matrix.Matrix // Zr, n x m
}

// ProveMSMG2 computes the proof (pi, theta) that committed Y (randomness
// R) and committed x (randomness s) satisfy eq. T, the 1x2 Zr proof
// randomness, is sampled uniformly when nil. pi is the flat 2x1 G2
// matrix; theta is the 2x1 FatMatrix over G1.
func (s *Scheme) ProveMSMG2(eq MSMG2Equation, Y, x, R, sRand, T *matrix.Matrix) (pi *matrix.Matrix, theta *matrix.FatMatrix, err error) {
	T, err = randomZr(s, 1, 2, T)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}

	Rt := R.Transpose()
	st := sRand.Transpose()
	Tt := T.Transpose()
	gammaT := eq.Gamma.Transpose()

	fatA := iota(eq.AConst)
	fatY := iota(Y)
	bPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), eq.BConst)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	xPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), x)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}

	term1pi, err := st.MulFat(fatA)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	stGamma, err := st.Mul(gammaT)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	term2pi, err := stGamma.MulFat(fatY)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	sum12pi, err := term1pi.Add(term2pi)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	term3pi, err := T.MulFat(s.CRS.V())
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	piFat, err := sum12pi.Add(term3pi)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	pi, err = piFat.Flatten()
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}

	term1theta, err := Rt.MulFat(bPrime)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	RtGamma, err := Rt.Mul(eq.Gamma)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	term2theta, err := RtGamma.MulFat(xPrime)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	sum12theta, err := term1theta.Add(term2theta)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	RtGammaS, err := RtGamma.Mul(sRand)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	coeff, err := RtGammaS.Sub(Tt)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	u1Fat := matrix.NewFat(1, 1, 2, 1, s.CRS.G1())
	if err := u1Fat.Set(1, 1, s.CRS.U1()); err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	term3theta, err := coeff.MulFat(u1Fat)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}
	theta, err = sum12theta.Add(term3theta)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: ProveMSMG2: %w", err)
	}

	return pi, theta, nil
}

// VerifyMSMG2 checks that commitment d (to Y) and e (to x, via
// CommitPrimeG1) satisfy eq under proof (pi, theta).
func (s *Scheme) VerifyMSMG2(eq MSMG2Equation, d, e *matrix.FatMatrix, pi *matrix.Matrix, theta *matrix.FatMatrix) (bool, error) {
	pr := s.CRS.Pairing()

	bPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), eq.BConst)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}
	fatA := iota(eq.AConst)

	term1, err := e.FatPoint(pr, fatA)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}
	term2, err := bPrime.FatPoint(pr, d)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}
	gammaD, err := eq.Gamma.Transpose().MulFat(d)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}
	term3, err := e.FatPoint(pr, gammaD)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}
	lhs, err := term1.Add(term2)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}
	lhs, err = lhs.Add(term3)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}

	rhs1, err := matrix.F(pr, s.CRS.U1(), pi)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}
	rhs2, err := theta.FatPoint(pr, s.CRS.V())
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}
	rhs, err := rhs1.Add(rhs2)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyMSMG2: %w", err)
	}

	return lhs.IsEqual(rhs), nil
}
