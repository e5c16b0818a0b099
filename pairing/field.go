// Package pairing defines the boundary between the Groth-Sahai algebra and
// the bilinear-pairing primitive that backs it. Nothing above this package
// knows about a concrete curve; it only deals with the four algebraic
// domains a pairing provider must expose: G1, G2, GT and Zr.
package pairing

import "fmt"

// Kind identifies which of the four algebraic domains an Element or Field
// belongs to.
type Kind int

const (
	G1 Kind = iota
	G2
	GT
	Zr
)

func (k Kind) String() string {
	switch k {
	case G1:
		return "G1"
	case G2:
		return "G2"
	case GT:
		return "GT"
	case Zr:
		return "Zr"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Element is a tagged value belonging to one of the four algebraic domains.
// Implementations dispatch arithmetic on their own concrete type; Element
// itself never grows a class hierarchy beyond this flat interface.
type Element interface {
	// Kind reports which algebraic domain this element belongs to.
	Kind() Kind
	// Field returns the field this element was created by.
	Field() Field

	// Duplicate returns an independent copy of the receiver.
	Duplicate() Element

	// Add sets the receiver to a+b and returns it.
	Add(a, b Element) Element
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Element) Element
	// Mul sets the receiver to the field's multiplicative composition of
	// a and b: group composition for G1/G2/GT, field multiplication for Zr.
	Mul(a, b Element) Element
	// MulZn sets the receiver to the scalar action of s (a Zr element) on
	// a, i.e. exponentiation/scalar-multiplication by s.
	MulZn(a Element, s Element) Element

	// IsEqual reports whether the receiver equals b.
	IsEqual(b Element) bool

	// Bytes returns the field's fixed-width canonical encoding.
	Bytes() []byte
	// SetBytes decodes a fixed-width encoding produced by Bytes into the
	// receiver.
	SetBytes(b []byte) error

	String() string
}

// Field creates and classifies elements of one algebraic domain.
type Field interface {
	Kind() Kind
	// Name is a short human-readable label, e.g. "bn254.G1".
	Name() string
	// ElementSize is the fixed length, in bytes, of Bytes()/SetBytes().
	ElementSize() int

	// Zero returns the additive identity.
	Zero() Element
	// One returns the field's distinguished one-element (the generator for
	// G1/G2, the multiplicative identity for GT/Zr).
	One() Element
	// Random draws a uniform element using a cryptographically strong
	// source of entropy.
	Random() (Element, error)
	// NewElement allocates a zero-valued element, suitable as a Set/SetBytes
	// target.
	NewElement() Element

	// SameAs reports whether other is a field of the same Kind backed by
	// the same concrete curve parameters — not merely the same Kind. Two
	// Field values for the same Kind but different curves must compare
	// unequal here.
	SameAs(other Field) bool
}

// Pairing is a bilinear-pairing provider: the four fields tied together by
// the map e: G1 x G2 -> GT.
type Pairing interface {
	// CurveKey is the provider's canonical catalogue key. An adapter
	// registered under several keys may report the same key for all of
	// them, so it need not be the key the provider was looked up under.
	CurveKey() string

	G1() Field
	G2() Field
	GT() Field
	Zr() Field

	// Pair computes e(a, b). a must be a G1() element and b a G2() element.
	Pair(a, b Element) (Element, error)
}
