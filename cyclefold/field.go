// Package cyclefold implements the CycleFold auxiliary track (spec.md
// §4.6): the two C1 (BN254) point additions of each main-track fold
// (cmE + r·cmT and cmW + r·cmW_fresh) are recorded as Ops, checked
// over BW6-761.Fr, and folded into a running (CF_U, CF_W) pair on its
// own Nova-style track. The scalar multiplications r·cmT and
// r·cmW_fresh are not recorded as Ops, and the augmented circuit
// (package circuit) does not consume this track: it still computes
// both the scalar multiplications and the additions with sw_emulated
// non-native arithmetic. Grounded on package nova's
// CommittedInstance/Witness/FoldInstance/CrossTerm shape
// (nova/instance.go, nova/fold.go), re-derived over BW6-761's scalar
// field since field/sparse/r1cs are fixed to BN254's.
package cyclefold

import (
	"math/big"

	bwfr "github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
)

// Scalar is a native element of Fq, the field CycleFold's EC checks
// run over.
type Scalar = bwfr.Element

func zero() Scalar { var s Scalar; s.SetZero(); return s }
func one() Scalar  { var s Scalar; s.SetOne(); return s }

func fromBigInt(v *big.Int) Scalar {
	var s Scalar
	s.SetBigInt(v)
	return s
}

// Vector is a dense vector of Scalar, the CF track's analogue of
// field.Vector.
type Vector []Scalar

func newVector(n int) Vector { return make(Vector, n) }

func (v Vector) clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// toBigInts converts v to raw big.Int scalars, the form
// pedersen.CommitNative expects so committed values never round-trip
// through the (differently-moduli) BN254 scalar field.
func (v Vector) toBigInts() []*big.Int {
	out := make([]*big.Int, len(v))
	for i := range v {
		out[i] = v[i].BigInt(new(big.Int))
	}
	return out
}
