// Package gs implements the Groth-Sahai non-interactive zero-knowledge
// proof system under the SXDH instantiation: perfectly-binding commitments
// to group and scalar witnesses, and provers/verifiers for the four
// pairing-equation families (and their linear sub-cases) a set of
// committed witnesses can be asked to satisfy.
package gs

import (
	"fmt"

	"github.com/arzela/groth-sahai/crs"
	"github.com/arzela/groth-sahai/matrix"
	"github.com/arzela/groth-sahai/pairing"
)

// Scheme binds every commitment, proof and verification operation to a
// single CRS.
type Scheme struct {
	CRS *crs.CRS
}

// New wraps c in a Scheme.
func New(c *crs.CRS) *Scheme {
	return &Scheme{CRS: c}
}

func randomZr(s *Scheme, rows, cols int, supplied *matrix.Matrix) (*matrix.Matrix, error) {
	if supplied != nil {
		return supplied, nil
	}
	return s.CRS.RandomZrMatrix(rows, cols)
}

// checkColumn validates that m is an n x 1 matrix over the expected domain.
func checkColumn(m *matrix.Matrix, kind pairing.Kind) error {
	if m.Cols() != 1 {
		return fmt.Errorf("%w: expected a column matrix, got %d columns", ErrWitnessShape, m.Cols())
	}
	if m.Field().Kind() != kind {
		return fmt.Errorf("%w: expected %s, got %s", ErrWitnessShape, kind, m.Field().Kind())
	}
	return nil
}

// CommitG1 commits to X, an n x 1 G1 matrix, using commitment randomness R
// (an n x 2 Zr matrix; sampled uniformly when nil). Returns the commitment
// and the randomness used.
func (s *Scheme) CommitG1(X, R *matrix.Matrix) (*matrix.FatMatrix, *matrix.Matrix, error) {
	if err := checkColumn(X, pairing.G1); err != nil {
		return nil, nil, fmt.Errorf("gs: CommitG1: %w", err)
	}
	R, err := randomZr(s, X.Rows(), 2, R)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: CommitG1: %w", err)
	}
	c, err := commit(s.CRS.U(), X, R)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: CommitG1: %w", err)
	}
	return c, R, nil
}

// CommitG2 commits to Y, an m x 1 G2 matrix, using commitment randomness S
// (an m x 2 Zr matrix; sampled uniformly when nil).
func (s *Scheme) CommitG2(Y, S *matrix.Matrix) (*matrix.FatMatrix, *matrix.Matrix, error) {
	if err := checkColumn(Y, pairing.G2); err != nil {
		return nil, nil, fmt.Errorf("gs: CommitG2: %w", err)
	}
	S, err := randomZr(s, Y.Rows(), 2, S)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: CommitG2: %w", err)
	}
	d, err := commit(s.CRS.V(), Y, S)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: CommitG2: %w", err)
	}
	return d, S, nil
}

// CommitPrimeG1 commits to z, an n x 1 Zr matrix destined to act on the G1
// side of an equation, using commitment randomness t (n x 1 Zr; sampled
// uniformly when nil).
func (s *Scheme) CommitPrimeG1(z, t *matrix.Matrix) (*matrix.FatMatrix, *matrix.Matrix, error) {
	if err := checkColumn(z, pairing.Zr); err != nil {
		return nil, nil, fmt.Errorf("gs: CommitPrimeG1: %w", err)
	}
	t, err := randomZr(s, z.Rows(), 1, t)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: CommitPrimeG1: %w", err)
	}
	c, err := commitPrime(s.CRS.U2(), s.CRS.G(), s.CRS.U1(), z, t)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: CommitPrimeG1: %w", err)
	}
	return c, t, nil
}

// CommitPrimeG2 commits to z, an n x 1 Zr matrix destined to act on the G2
// side of an equation, using commitment randomness t (n x 1 Zr; sampled
// uniformly when nil).
func (s *Scheme) CommitPrimeG2(z, t *matrix.Matrix) (*matrix.FatMatrix, *matrix.Matrix, error) {
	if err := checkColumn(z, pairing.Zr); err != nil {
		return nil, nil, fmt.Errorf("gs: CommitPrimeG2: %w", err)
	}
	t, err := randomZr(s, z.Rows(), 1, t)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: CommitPrimeG2: %w", err)
	}
	c, err := commitPrime(s.CRS.V2(), s.CRS.H(), s.CRS.V1(), z, t)
	if err != nil {
		return nil, nil, fmt.Errorf("gs: CommitPrimeG2: %w", err)
	}
	return c, t, nil
}

// commit computes FatMap(X, iota) + T.key, the shared core of CommitG1 and
// CommitG2 (key is u for b=1, v for b=2).
func commit(key *matrix.FatMatrix, X, T *matrix.Matrix) (*matrix.FatMatrix, error) {
	lifted := iota(X)
	scaled, err := T.MulFat(key)
	if err != nil {
		return nil, fmt.Errorf("gs: commit: %w", err)
	}
	return lifted.Add(scaled)
}

// commitPrime computes, cellwise, iotaPrime(z(i,1)) + key1.t(i,1), the
// shared core of CommitPrimeG1 and CommitPrimeG2 (key2/gen/key1 are
// u2/G/u1 for b=1, v2/H/v1 for b=2).
func commitPrime(key2 *matrix.Matrix, gen pairing.Element, key1, z, t *matrix.Matrix) (*matrix.FatMatrix, error) {
	n := z.Rows()
	res := matrix.NewFat(n, 1, 2, 1, key1.Field())
	for i := 1; i <= n; i++ {
		zi, err := z.At(i, 1)
		if err != nil {
			return nil, err
		}
		ti, err := t.At(i, 1)
		if err != nil {
			return nil, err
		}
		lifted, err := iotaPrime(key2, gen, zi)
		if err != nil {
			return nil, err
		}
		scaled, err := key1.MulZn(ti)
		if err != nil {
			return nil, err
		}
		sum, err := lifted.Add(scaled)
		if err != nil {
			return nil, err
		}
		if err := res.Set(i, 1, sum); err != nil {
			return nil, err
		}
	}
	return res, nil
}
