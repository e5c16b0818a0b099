package bn254

import (
	"fmt"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/arzela/groth-sahai/pairing"
)

// element holds exactly one of the four payload shapes, selected by kind.
type element struct {
	kind pairing.Kind
	f    *field

	g1 curve.G1Affine
	g2 curve.G2Affine
	gt curve.GT
	zr fr.Element
}

func (e *element) Kind() pairing.Kind  { return e.kind }
func (e *element) Field() pairing.Field { return e.f }

func (e *element) Duplicate() pairing.Element {
	dup := *e
	return &dup
}

func (e *element) check(x pairing.Element) *element {
	ex, ok := x.(*element)
	if !ok || ex.kind != e.kind {
		panic(fmt.Sprintf("pairing/bn254: element of kind %v used where %v expected", kindOf(x), e.kind))
	}
	return ex
}

func kindOf(x pairing.Element) pairing.Kind {
	if ex, ok := x.(*element); ok {
		return ex.kind
	}
	return -1
}

func (e *element) Add(a, b pairing.Element) pairing.Element {
	ea, eb := e.check(a), e.check(b)
	switch e.kind {
	case pairing.G1:
		e.g1.Add(&ea.g1, &eb.g1)
	case pairing.G2:
		e.g2.Add(&ea.g2, &eb.g2)
	case pairing.GT:
		e.gt.Mul(&ea.gt, &eb.gt)
	case pairing.Zr:
		e.zr.Add(&ea.zr, &eb.zr)
	}
	return e
}

func (e *element) Sub(a, b pairing.Element) pairing.Element {
	ea, eb := e.check(a), e.check(b)
	switch e.kind {
	case pairing.G1:
		e.g1.Sub(&ea.g1, &eb.g1)
	case pairing.G2:
		var negB curve.G2Affine
		negB.Neg(&eb.g2)
		e.g2.Add(&ea.g2, &negB)
	case pairing.GT:
		var invB curve.GT
		invB.Inverse(&eb.gt)
		e.gt.Mul(&ea.gt, &invB)
	case pairing.Zr:
		e.zr.Sub(&ea.zr, &eb.zr)
	}
	return e
}

// Mul is the field's multiplicative composition: group composition for
// G1/G2/GT (the same operation as Add, consistent with Sub's "+ -b"
// gluing above), field multiplication for Zr.
func (e *element) Mul(a, b pairing.Element) pairing.Element {
	switch e.kind {
	case pairing.Zr:
		ea, eb := e.check(a), e.check(b)
		e.zr.Mul(&ea.zr, &eb.zr)
		return e
	default:
		return e.Add(a, b)
	}
}

func (e *element) MulZn(a pairing.Element, s pairing.Element) pairing.Element {
	ea := e.check(a)
	es, ok := s.(*element)
	if !ok || es.kind != pairing.Zr {
		panic(fmt.Sprintf("pairing/bn254: MulZn scalar must be a Zr element, got %v", kindOf(s)))
	}
	scalar := es.zr.BigInt(new(big.Int))
	switch e.kind {
	case pairing.G1:
		e.g1.ScalarMultiplication(&ea.g1, scalar)
	case pairing.G2:
		e.g2.ScalarMultiplication(&ea.g2, scalar)
	case pairing.GT:
		e.gt.Exp(ea.gt, scalar)
	case pairing.Zr:
		e.zr.Mul(&ea.zr, &es.zr)
	}
	return e
}

func (e *element) IsEqual(b pairing.Element) bool {
	eb, ok := b.(*element)
	if !ok || eb.kind != e.kind {
		return false
	}
	switch e.kind {
	case pairing.G1:
		return e.g1.Equal(&eb.g1)
	case pairing.G2:
		return e.g2.Equal(&eb.g2)
	case pairing.GT:
		return e.gt.Equal(&eb.gt)
	case pairing.Zr:
		return e.zr.Equal(&eb.zr)
	}
	return false
}

func (e *element) Bytes() []byte {
	switch e.kind {
	case pairing.G1:
		b := e.g1.Bytes()
		return b[:]
	case pairing.G2:
		b := e.g2.Bytes()
		return b[:]
	case pairing.GT:
		return gtBytes(&e.gt)
	case pairing.Zr:
		b := e.zr.Bytes()
		return b[:]
	}
	return nil
}

func (e *element) SetBytes(b []byte) error {
	switch e.kind {
	case pairing.G1:
		if len(b) != curve.SizeOfG1AffineCompressed {
			return fmt.Errorf("pairing/bn254: G1 SetBytes: want %d bytes, got %d", curve.SizeOfG1AffineCompressed, len(b))
		}
		_, err := e.g1.SetBytes(b)
		return err
	case pairing.G2:
		if len(b) != curve.SizeOfG2AffineCompressed {
			return fmt.Errorf("pairing/bn254: G2 SetBytes: want %d bytes, got %d", curve.SizeOfG2AffineCompressed, len(b))
		}
		_, err := e.g2.SetBytes(b)
		return err
	case pairing.GT:
		return gtSetBytes(&e.gt, b)
	case pairing.Zr:
		if len(b) != fr.Bytes {
			return fmt.Errorf("pairing/bn254: Zr SetBytes: want %d bytes, got %d", fr.Bytes, len(b))
		}
		e.zr.SetBytes(b)
		return nil
	}
	return fmt.Errorf("pairing/bn254: SetBytes: unknown kind %v", e.kind)
}

func (e *element) String() string {
	switch e.kind {
	case pairing.G1:
		return e.g1.String()
	case pairing.G2:
		return e.g2.String()
	case pairing.GT:
		return e.gt.String()
	case pairing.Zr:
		return e.zr.String()
	}
	return ""
}

// gtBytes walks the Fp12 tower explicitly: gnark-crypto does not expose a
// ready-made fixed-width codec for GT, unlike G1/G2/Zr.
func gtBytes(v *curve.GT) []byte {
	limbs := [12]fp.Element{
		v.C0.B0.A0, v.C0.B0.A1, v.C0.B1.A0, v.C0.B1.A1, v.C0.B2.A0, v.C0.B2.A1,
		v.C1.B0.A0, v.C1.B0.A1, v.C1.B1.A0, v.C1.B1.A1, v.C1.B2.A0, v.C1.B2.A1,
	}
	out := make([]byte, 0, sizeOfGT)
	for _, l := range limbs {
		b := l.Bytes()
		out = append(out, b[:]...)
	}
	return out
}

func gtSetBytes(v *curve.GT, data []byte) error {
	if len(data) != sizeOfGT {
		return fmt.Errorf("pairing/bn254: GT SetBytes: want %d bytes, got %d", sizeOfGT, len(data))
	}
	limbs := [12]*fp.Element{
		&v.C0.B0.A0, &v.C0.B0.A1, &v.C0.B1.A0, &v.C0.B1.A1, &v.C0.B2.A0, &v.C0.B2.A1,
		&v.C1.B0.A0, &v.C1.B0.A1, &v.C1.B1.A0, &v.C1.B1.A1, &v.C1.B2.A0, &v.C1.B2.A1,
	}
	for i, l := range limbs {
		l.SetBytes(data[i*fp.Bytes : (i+1)*fp.Bytes])
	}
	return nil
}
