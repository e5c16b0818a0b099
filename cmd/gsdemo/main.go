// Command gsdemo runs a single pairing-product equation end to end: it
// generates a CRS, commits to witnesses satisfying the equation, produces a
// Groth-Sahai proof, and verifies it.
package main

import (
	"fmt"
	"log"

	"github.com/arzela/groth-sahai/crs"
	"github.com/arzela/groth-sahai/gs"
	"github.com/arzela/groth-sahai/matrix"
	_ "github.com/arzela/groth-sahai/pairing/bn254"
)

// buildEquation constructs e(G, Y1) * e(X1, Y2) = 1, i.e. A = (G, 0),
// B = (0, 0), gamma = [[0, 1], [0, 0]].
func buildEquation(c *crs.CRS) gs.PPEEquation {
	g1, g2, zr := c.G1(), c.G2(), c.Zr()

	A := matrix.New(2, 1, g1)
	_ = A.Set(1, 1, c.G())
	_ = A.Set(2, 1, g1.Zero())

	B := matrix.New(2, 1, g2)
	_ = B.Set(1, 1, g2.Zero())
	_ = B.Set(2, 1, g2.Zero())

	gamma := matrix.New(2, 2, zr)
	_ = gamma.Set(1, 1, zr.Zero())
	_ = gamma.Set(1, 2, zr.One())
	_ = gamma.Set(2, 1, zr.Zero())
	_ = gamma.Set(2, 2, zr.Zero())

	return gs.PPEEquation{A: A, B: B, Gamma: gamma}
}

// satisfyingWitnesses returns witnesses for e(G,Y1)*e(X1,Y2) = 1. With
// gamma(1,2)=1 and the rest zero, the equation reduces to
// e(G,Y1) + e(X1,Y2) = 0, so X1 = 0 and Y1 = 0 satisfy it trivially; X2 and
// Y2 do not appear in the equation and are sampled uniformly.
func satisfyingWitnesses(c *crs.CRS) (X, Y *matrix.Matrix) {
	g1, g2 := c.G1(), c.G2()

	X = matrix.New(2, 1, g1)
	_ = X.Set(1, 1, g1.Zero())
	x2, err := matrix.NewRandom(1, 1, g1)
	if err != nil {
		log.Fatalf("sampling X2: %v", err)
	}
	x2v, _ := x2.At(1, 1)
	_ = X.Set(2, 1, x2v)

	Y = matrix.New(2, 1, g2)
	_ = Y.Set(1, 1, g2.Zero())
	y2, err := matrix.NewRandom(1, 1, g2)
	if err != nil {
		log.Fatalf("sampling Y2: %v", err)
	}
	y2v, _ := y2.At(1, 1)
	_ = Y.Set(2, 1, y2v)

	return X, Y
}

func main() {
	fmt.Println("Generating CRS")
	c, err := crs.Generate("bn254")
	if err != nil {
		log.Fatalf("crs.Generate: %v", err)
	}
	scheme := gs.New(c)

	eq := buildEquation(c)
	X, Y := satisfyingWitnesses(c)

	fmt.Println("Committing witnesses")
	comX, R, err := scheme.CommitG1(X, nil)
	if err != nil {
		log.Fatalf("CommitG1: %v", err)
	}
	comY, S, err := scheme.CommitG2(Y, nil)
	if err != nil {
		log.Fatalf("CommitG2: %v", err)
	}

	fmt.Println("Proving the pairing-product equation")
	pi, theta, err := scheme.ProvePPE(eq, X, Y, R, S, nil)
	if err != nil {
		log.Fatalf("ProvePPE: %v", err)
	}

	fmt.Println("Verifying the proof")
	ok, err := scheme.VerifyPPE(eq, comX, comY, pi, theta)
	if err != nil {
		log.Fatalf("VerifyPPE: %v", err)
	}

	fmt.Println()
	fmt.Println("Proof verifies:", ok)
}
