// Package crs generates and persists the Groth-Sahai Common Reference
// String: the pairing-group generators and SXDH commitment keys every
// commitment, proof and verification in package gs is computed against.
package crs

import (
	"fmt"
	"sync"

	"github.com/arzela/groth-sahai/matrix"
	"github.com/arzela/groth-sahai/pairing"
)

// CRS bundles a pairing provider with the SXDH commitment keys derived from
// it: u1, u2 over G1 and v1, v2 over G2, each a 2x1 column matrix.
type CRS struct {
	CurveKey string

	pr pairing.Pairing

	g pairing.Element
	h pairing.Element

	u1, u2 *matrix.Matrix
	v1, v2 *matrix.Matrix
}

// Generate builds a fresh CRS over the curve registered under curveKey.
func Generate(curveKey string) (*CRS, error) {
	pr, err := pairing.Lookup(curveKey)
	if err != nil {
		return nil, fmt.Errorf("crs: Generate: %w", err)
	}

	g, err := pr.G1().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: Generate: sampling G: %w", err)
	}
	h, err := pr.G2().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: Generate: sampling H: %w", err)
	}

	alpha, err := pr.Zr().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: Generate: sampling alpha: %w", err)
	}
	beta, err := pr.Zr().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: Generate: sampling beta: %w", err)
	}
	gamma, err := pr.Zr().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: Generate: sampling gamma: %w", err)
	}
	delta, err := pr.Zr().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: Generate: sampling delta: %w", err)
	}

	alphaG := pr.G1().NewElement().MulZn(g, alpha)
	u1, err := column(pr.G1(), g, alphaG)
	if err != nil {
		return nil, err
	}
	u2, err := scaleColumn(u1, beta)
	if err != nil {
		return nil, err
	}

	gammaH := pr.G2().NewElement().MulZn(h, gamma)
	v1, err := column(pr.G2(), h, gammaH)
	if err != nil {
		return nil, err
	}
	v2, err := scaleColumn(v1, delta)
	if err != nil {
		return nil, err
	}

	return &CRS{
		CurveKey: curveKey,
		pr:       pr,
		g:        g,
		h:        h,
		u1:       u1,
		u2:       u2,
		v1:       v1,
		v2:       v2,
	}, nil
}

func column(field pairing.Field, top, bottom pairing.Element) (*matrix.Matrix, error) {
	m := matrix.New(2, 1, field)
	if err := m.Set(1, 1, top); err != nil {
		return nil, err
	}
	if err := m.Set(2, 1, bottom); err != nil {
		return nil, err
	}
	return m, nil
}

func scaleColumn(col *matrix.Matrix, scalar pairing.Element) (*matrix.Matrix, error) {
	return col.MulZn(scalar)
}

// Pairing returns the pairing provider this CRS was generated over.
func (c *CRS) Pairing() pairing.Pairing { return c.pr }

// G1 returns the G1 field.
func (c *CRS) G1() pairing.Field { return c.pr.G1() }

// G2 returns the G2 field.
func (c *CRS) G2() pairing.Field { return c.pr.G2() }

// Gt returns the GT field.
func (c *CRS) Gt() pairing.Field { return c.pr.GT() }

// Zr returns the Zr field.
func (c *CRS) Zr() pairing.Field { return c.pr.Zr() }

// G returns the distinguished G1 generator the CRS was built around.
func (c *CRS) G() pairing.Element { return c.g }

// H returns the distinguished G2 generator the CRS was built around.
func (c *CRS) H() pairing.Element { return c.h }

// U1 returns the (G, alpha*G) column.
func (c *CRS) U1() *matrix.Matrix { return c.u1 }

// U2 returns the beta-scaled u1 column.
func (c *CRS) U2() *matrix.Matrix { return c.u2 }

// V1 returns the (H, gamma*H) column.
func (c *CRS) V1() *matrix.Matrix { return c.v1 }

// V2 returns the delta-scaled v1 column.
func (c *CRS) V2() *matrix.Matrix { return c.v2 }

// U assembles the G1 commitment key as a 2x1 FatMatrix of 2x1 columns:
// cell (1,1) = u1, cell (2,1) = u2.
func (c *CRS) U() *matrix.FatMatrix {
	fm := matrix.NewFat(2, 1, 2, 1, c.pr.G1())
	_ = fm.Set(1, 1, c.u1)
	_ = fm.Set(2, 1, c.u2)
	return fm
}

// V assembles the G2 commitment key as a 2x1 FatMatrix of 2x1 columns:
// cell (1,1) = v1, cell (2,1) = v2.
func (c *CRS) V() *matrix.FatMatrix {
	fm := matrix.NewFat(2, 1, 2, 1, c.pr.G2())
	_ = fm.Set(1, 1, c.v1)
	_ = fm.Set(2, 1, c.v2)
	return fm
}

// RandomZrMatrix returns an r x c matrix of uniform Zr elements.
func (c *CRS) RandomZrMatrix(r, cCols int) (*matrix.Matrix, error) {
	return matrix.NewRandom(r, cCols, c.Zr())
}

// UnitMatrix returns the n x n identity matrix over Zr.
func (c *CRS) UnitMatrix(n int) *matrix.Matrix {
	zr := c.Zr()
	m := matrix.New(n, n, zr)
	for i := 1; i <= n; i++ {
		_ = m.Set(i, i, zr.One())
	}
	return m
}

var (
	instanceMu sync.Mutex
	instance   *CRS
)

// GetInstance returns the process-wide current CRS, lazily generating one
// over the default curve on first call if none has been installed via
// SetCurve or LoadFromZipFile. New code should prefer threading a *CRS
// explicitly; this is a rehydration fallback for consumers of deserialised
// proof artefacts that need ambient field identity.
func GetInstance() (*CRS, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		c, err := Generate(pairing.DefaultCurveKey)
		if err != nil {
			return nil, fmt.Errorf("crs: GetInstance: %w", err)
		}
		instance = c
	}
	return instance, nil
}

// SetCurve generates a fresh CRS over curveKey and installs it as the
// process-wide current CRS.
func SetCurve(curveKey string) error {
	c, err := Generate(curveKey)
	if err != nil {
		return err
	}
	instanceMu.Lock()
	instance = c
	instanceMu.Unlock()
	return nil
}

// LoadFromZipFile reads a CRS archive from path and installs it as the
// process-wide current CRS.
func LoadFromZipFile(path string) error {
	c, err := ReadZipFile(path)
	if err != nil {
		return err
	}
	instanceMu.Lock()
	instance = c
	instanceMu.Unlock()
	return nil
}
