package cyclefold

import "math/big"

// ComputeAdd builds the Op recording P3 = P1 + P2 for two distinct C1
// affine points, using the standard short Weierstrass chord formula
// (curve-parameter independent for P1 != ±P2): lambda = (y2-y1)/(x2-x1),
// x3 = lambda^2 - x1 - x2, y3 = lambda*(x1-x3) - y1. Coordinates are
// C1 (BN254) base-field elements, which is exactly Fq — no conversion
// needed beyond the big.Int boundary.
func ComputeAdd(x1, y1, x2, y2 *big.Int) Op {
	X1, Y1 := fromBigInt(x1), fromBigInt(y1)
	X2, Y2 := fromBigInt(x2), fromBigInt(y2)

	var dx, dy, dxInv, lambda Scalar
	dx.Sub(&X2, &X1)
	dy.Sub(&Y2, &Y1)
	dxInv.Inverse(&dx)
	lambda.Mul(&dy, &dxInv)

	var lamSq, x3, t, y3 Scalar
	lamSq.Mul(&lambda, &lambda)
	x3.Sub(&lamSq, &X1)
	x3.Sub(&x3, &X2)
	t.Sub(&X1, &x3)
	t.Mul(&t, &lambda)
	y3.Sub(&t, &Y1)

	return Op{X1: X1, Y1: Y1, X2: X2, Y2: Y2, X3: x3, Y3: y3, Lambda: lambda}
}

// ResultPoint returns the (x3, y3) coordinates ComputeAdd derived, as
// big.Ints ready to feed back into an ecc.Point via SetPoint.
func (o Op) ResultPoint() (*big.Int, *big.Int) {
	return o.X3.BigInt(new(big.Int)), o.Y3.BigInt(new(big.Int))
}
