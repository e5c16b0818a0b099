package gs

import (
	"fmt"

	"github.com/arzela/groth-sahai/matrix"
)

// Linear equations drop the quadratic (Gamma) cross-term from one of the
// four equation families, which collapses one of the two proof components
// to zero. Each type below carries only the half of the proof that survives.

// LinearG1MSMEquation is Sum_i b_i.X_i = 0_G1 over committed X in G1^n,
// with constants b in Zr^n.
type LinearG1MSMEquation struct {
	BConst *matrix.Matrix // Zr, n x 1
}

// ProveLinearG1MSM computes pi = Rt.FatMap(b, iotaPrime_G2) for committed X
// with randomness R.
func (s *Scheme) ProveLinearG1MSM(eq LinearG1MSMEquation, R *matrix.Matrix) (*matrix.FatMatrix, error) {
	bPrime, err := iotaPrimeCol(s.CRS.V2(), s.CRS.H(), eq.BConst)
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearG1MSM: %w", err)
	}
	pi, err := R.Transpose().MulFat(bPrime)
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearG1MSM: %w", err)
	}
	return pi, nil
}

// VerifyLinearG1MSM checks that commitment c (to X) satisfies eq under pi.
func (s *Scheme) VerifyLinearG1MSM(eq LinearG1MSMEquation, c *matrix.FatMatrix, pi *matrix.FatMatrix) (bool, error) {
	pr := s.CRS.Pairing()
	bPrime, err := iotaPrimeCol(s.CRS.V2(), s.CRS.H(), eq.BConst)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearG1MSM: %w", err)
	}
	lhs, err := c.FatPoint(pr, bPrime)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearG1MSM: %w", err)
	}
	rhs, err := s.CRS.U().FatPoint(pr, pi)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearG1MSM: %w", err)
	}
	return lhs.IsEqual(rhs), nil
}

// LinearZrMSMG1Equation is Sum_j y_j.A_j = 0_G1 over committed y in Zr^m,
// with constants A in G1^m.
type LinearZrMSMG1Equation struct {
	AConst *matrix.Matrix // G1, m x 1
}

// ProveLinearZrMSMG1 computes theta = Flatten(st.FatMap(A, iota)) for
// committed y with randomness sRand (via CommitPrimeG2).
func (s *Scheme) ProveLinearZrMSMG1(eq LinearZrMSMG1Equation, sRand *matrix.Matrix) (*matrix.Matrix, error) {
	fatA := iota(eq.AConst)
	thetaFat, err := sRand.Transpose().MulFat(fatA)
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearZrMSMG1: %w", err)
	}
	theta, err := thetaFat.Flatten()
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearZrMSMG1: %w", err)
	}
	return theta, nil
}

// VerifyLinearZrMSMG1 checks that commitment d (to y) satisfies eq under
// theta.
func (s *Scheme) VerifyLinearZrMSMG1(eq LinearZrMSMG1Equation, d *matrix.FatMatrix, theta *matrix.Matrix) (bool, error) {
	pr := s.CRS.Pairing()
	fatA := iota(eq.AConst)
	lhs, err := fatA.FatPoint(pr, d)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearZrMSMG1: %w", err)
	}
	rhs, err := matrix.F(pr, theta, s.CRS.V1())
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearZrMSMG1: %w", err)
	}
	return lhs.IsEqual(rhs), nil
}

// LinearG2MSMEquation is Sum_i a_i.Y_i = 0_G2 over committed Y in G2^n,
// with constants a in Zr^n.
type LinearG2MSMEquation struct {
	AConst *matrix.Matrix // Zr, n x 1
}

// ProveLinearG2MSM computes theta = St.FatMap(a, iotaPrime_G1) for
// committed Y with randomness S.
func (s *Scheme) ProveLinearG2MSM(eq LinearG2MSMEquation, S *matrix.Matrix) (*matrix.FatMatrix, error) {
	aPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), eq.AConst)
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearG2MSM: %w", err)
	}
	theta, err := S.Transpose().MulFat(aPrime)
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearG2MSM: %w", err)
	}
	return theta, nil
}

// VerifyLinearG2MSM checks that commitment d (to Y) satisfies eq under
// theta.
func (s *Scheme) VerifyLinearG2MSM(eq LinearG2MSMEquation, d *matrix.FatMatrix, theta *matrix.FatMatrix) (bool, error) {
	pr := s.CRS.Pairing()
	aPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), eq.AConst)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearG2MSM: %w", err)
	}
	lhs, err := aPrime.FatPoint(pr, d)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearG2MSM: %w", err)
	}
	rhs, err := theta.FatPoint(pr, s.CRS.V())
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearG2MSM: %w", err)
	}
	return lhs.IsEqual(rhs), nil
}

// LinearZrMSMG2Equation is Sum_i B_i.x_i = 0_G2 over committed x in Zr^n,
// with constants B in G2^n.
type LinearZrMSMG2Equation struct {
	BConst *matrix.Matrix // G2, n x 1
}

// ProveLinearZrMSMG2 computes pi = Flatten(rt.FatMap(B, iota)) for
// committed x with randomness r (via CommitPrimeG1).
func (s *Scheme) ProveLinearZrMSMG2(eq LinearZrMSMG2Equation, r *matrix.Matrix) (*matrix.Matrix, error) {
	fatB := iota(eq.BConst)
	piFat, err := r.Transpose().MulFat(fatB)
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearZrMSMG2: %w", err)
	}
	pi, err := piFat.Flatten()
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearZrMSMG2: %w", err)
	}
	return pi, nil
}

// VerifyLinearZrMSMG2 checks that commitment e (to x) satisfies eq under
// pi.
func (s *Scheme) VerifyLinearZrMSMG2(eq LinearZrMSMG2Equation, e *matrix.FatMatrix, pi *matrix.Matrix) (bool, error) {
	pr := s.CRS.Pairing()
	fatB := iota(eq.BConst)
	lhs, err := e.FatPoint(pr, fatB)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearZrMSMG2: %w", err)
	}
	rhs, err := matrix.F(pr, s.CRS.U1(), pi)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearZrMSMG2: %w", err)
	}
	return lhs.IsEqual(rhs), nil
}

// LinearQuadraticEquation is Sum_i a_i.y_i = 0 over committed y in Zr^m,
// with constants a in Zr^m, entirely within Zr.
type LinearQuadraticEquation struct {
	AConst *matrix.Matrix // Zr, m x 1
}

// ProveLinearQuadratic computes theta = Flatten(st.FatMap(a, iotaPrime_G1))
// for committed y with randomness sRand (via CommitPrimeG2).
func (s *Scheme) ProveLinearQuadratic(eq LinearQuadraticEquation, sRand *matrix.Matrix) (*matrix.Matrix, error) {
	aPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), eq.AConst)
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearQuadratic: %w", err)
	}
	thetaFat, err := sRand.Transpose().MulFat(aPrime)
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearQuadratic: %w", err)
	}
	theta, err := thetaFat.Flatten()
	if err != nil {
		return nil, fmt.Errorf("gs: ProveLinearQuadratic: %w", err)
	}
	return theta, nil
}

// VerifyLinearQuadratic checks that commitment d (to y, via CommitPrimeG2)
// satisfies eq under theta.
func (s *Scheme) VerifyLinearQuadratic(eq LinearQuadraticEquation, d *matrix.FatMatrix, theta *matrix.Matrix) (bool, error) {
	pr := s.CRS.Pairing()
	aPrime, err := iotaPrimeCol(s.CRS.U2(), s.CRS.G(), eq.AConst)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearQuadratic: %w", err)
	}
	lhs, err := aPrime.FatPoint(pr, d)
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearQuadratic: %w", err)
	}
	rhs, err := matrix.F(pr, theta, s.CRS.V1())
	if err != nil {
		return false, fmt.Errorf("gs: VerifyLinearQuadratic: %w", err)
	}
	return lhs.IsEqual(rhs), nil
}
