// Package bn254 adapts github.com/consensys/gnark-crypto's ecc/bn254 curve
// to the pairing.Pairing contract, registering itself under the catalogue
// keys "bn254" and the default 112-bit security level key.
package bn254

import (
	"fmt"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/arzela/groth-sahai/pairing"
)

func init() {
	pairing.Register("bn254", New)
	pairing.Register(pairing.DefaultCurveKey, New)
}

const familyID = "bn254"

// New constructs a fresh bn254 pairing provider. Every call returns an
// independent value, but fields produced by different calls still compare
// SameAs-equal: they describe the same mathematical curve. The provider's
// CurveKey is pairing.DefaultCurveKey under either catalogue key.
func New() (pairing.Pairing, error) {
	p := &provider{curveKey: pairing.DefaultCurveKey}
	p.g1 = &field{kind: pairing.G1, name: "bn254.G1", size: curve.SizeOfG1AffineCompressed, provider: p}
	p.g2 = &field{kind: pairing.G2, name: "bn254.G2", size: curve.SizeOfG2AffineCompressed, provider: p}
	p.gt = &field{kind: pairing.GT, name: "bn254.GT", size: sizeOfGT, provider: p}
	p.zr = &field{kind: pairing.Zr, name: "bn254.Zr", size: fr.Bytes, provider: p}
	return p, nil
}

// sizeOfGT is the byte length of the manual, field-element-wise encoding of
// an Fp12 (GT) element: 12 base-field coordinates of fp.Bytes-sized limbs
// each (gnark-crypto does not expose a ready-made fixed-width GT codec, so
// this adapter walks the tower extension explicitly).
const sizeOfGT = 12 * 32

type provider struct {
	curveKey string
	g1, g2, gt, zr *field
}

func (p *provider) CurveKey() string  { return p.curveKey }
func (p *provider) G1() pairing.Field { return p.g1 }
func (p *provider) G2() pairing.Field { return p.g2 }
func (p *provider) GT() pairing.Field { return p.gt }
func (p *provider) Zr() pairing.Field { return p.zr }

func (p *provider) Pair(a, b pairing.Element) (pairing.Element, error) {
	ea, ok := a.(*element)
	if !ok || ea.kind != pairing.G1 {
		return nil, fmt.Errorf("pairing: Pair expects a G1 element, got %T", a)
	}
	eb, ok := b.(*element)
	if !ok || eb.kind != pairing.G2 {
		return nil, fmt.Errorf("pairing: Pair expects a G2 element, got %T", b)
	}
	res, err := curve.Pair([]curve.G1Affine{ea.g1}, []curve.G2Affine{eb.g2})
	if err != nil {
		return nil, fmt.Errorf("pairing: Pair: %w", err)
	}
	return &element{kind: pairing.GT, f: p.gt, gt: res}, nil
}

// field is shared by every Kind; SameAs ties fields from independently
// constructed providers together through the provider's curve key, which
// New always sets to pairing.DefaultCurveKey.
type field struct {
	kind     pairing.Kind
	name     string
	size     int
	provider *provider
}

func (f *field) Kind() pairing.Kind  { return f.kind }
func (f *field) Name() string        { return f.name }
func (f *field) ElementSize() int    { return f.size }

func (f *field) SameAs(other pairing.Field) bool {
	o, ok := other.(*field)
	if !ok {
		return false
	}
	return f.kind == o.kind && f.provider.curveKey == o.provider.curveKey
}

func (f *field) Zero() pairing.Element {
	e := &element{kind: f.kind, f: f}
	switch f.kind {
	case pairing.G1:
		e.g1.X.SetZero()
		e.g1.Y.SetZero()
	case pairing.G2:
		e.g2.X.SetZero()
		e.g2.Y.SetZero()
	case pairing.GT:
		// GT's "Add" is multiplicative composition, so its additive
		// identity is the multiplicative identity, not the zero Fp12
		// element (which is not a valid GT group element at all).
		e.gt.SetOne()
	case pairing.Zr:
		e.zr.SetZero()
	}
	return e
}

func (f *field) One() pairing.Element {
	e := &element{kind: f.kind, f: f}
	switch f.kind {
	case pairing.G1:
		_, _, g1Gen, _ := curve.Generators()
		e.g1 = g1Gen
	case pairing.G2:
		_, _, _, g2Gen := curve.Generators()
		e.g2 = g2Gen
	case pairing.GT:
		e.gt.SetOne()
	case pairing.Zr:
		e.zr.SetOne()
	}
	return e
}

func (f *field) Random() (pairing.Element, error) {
	e := &element{kind: f.kind, f: f}
	switch f.kind {
	case pairing.G1:
		s, err := randScalar()
		if err != nil {
			return nil, err
		}
		e.g1.ScalarMultiplicationBase(s)
	case pairing.G2:
		s, err := randScalar()
		if err != nil {
			return nil, err
		}
		e.g2.ScalarMultiplicationBase(s)
	case pairing.GT:
		base, err := f.provider.g1.Random()
		if err != nil {
			return nil, err
		}
		other, err := f.provider.g2.Random()
		if err != nil {
			return nil, err
		}
		gt, err := f.provider.Pair(base, other)
		if err != nil {
			return nil, err
		}
		return gt, nil
	case pairing.Zr:
		if _, err := e.zr.SetRandom(); err != nil {
			return nil, fmt.Errorf("pairing: Zr random: %w", err)
		}
	}
	return e, nil
}

func (f *field) NewElement() pairing.Element {
	return &element{kind: f.kind, f: f}
}

func randScalar() (*big.Int, error) {
	var zrElem fr.Element
	if _, err := zrElem.SetRandom(); err != nil {
		return nil, fmt.Errorf("pairing: random scalar: %w", err)
	}
	return zrElem.BigInt(new(big.Int)), nil
}
