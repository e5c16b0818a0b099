package gs

import (
	"github.com/arzela/groth-sahai/matrix"
	"github.com/arzela/groth-sahai/pairing"
)

// iotaElem is the structural embedding G_b -> G_b^{2x1}, x |-> (0, x)^T.
func iotaElem(x pairing.Element) *matrix.Matrix {
	field := x.Field()
	m := matrix.New(2, 1, field)
	_ = m.Set(2, 1, x)
	return m
}

// iota lifts every cell of X (a plain G_b^{n x 1} matrix) into the n x 1
// FatMatrix of 2x1 columns (0, X(i,1))^T.
func iota(X *matrix.Matrix) *matrix.FatMatrix {
	return X.FatMap(2, 1, iotaElem)
}

// iotaPrime is the scalar embedding Zr -> G_b^{2x1}: iotaPrime(z) =
// (key2 + iota(gen)) * z, where key2 is u2 (b=1) or v2 (b=2) and gen is G
// (b=1) or H (b=2).
func iotaPrime(key2 *matrix.Matrix, gen pairing.Element, z pairing.Element) (*matrix.Matrix, error) {
	sum, err := key2.Add(iotaElem(gen))
	if err != nil {
		return nil, err
	}
	return sum.MulZn(z)
}

// iotaPrimeCol lifts every cell of z (a plain Zr^{n x 1} matrix) into the
// n x 1 FatMatrix of 2x1 columns iotaPrime(z(i,1)).
func iotaPrimeCol(key2 *matrix.Matrix, gen pairing.Element, z *matrix.Matrix) (*matrix.FatMatrix, error) {
	n := z.Rows()
	res := matrix.NewFat(n, 1, 2, 1, key2.Field())
	for i := 1; i <= n; i++ {
		zi, err := z.At(i, 1)
		if err != nil {
			return nil, err
		}
		col, err := iotaPrime(key2, gen, zi)
		if err != nil {
			return nil, err
		}
		if err := res.Set(i, 1, col); err != nil {
			return nil, err
		}
	}
	return res, nil
}
