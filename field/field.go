// Package field wraps the scalar field nova-go folds over: the BN254
// scalar field the augmented circuit runs natively on. The higher
// modules (sparse, r1cs, ccs, commitment, transcript) use this single
// concrete field and are not generic over it; the CycleFold track
// (package cyclefold) carries its own scalar type and vector code over
// the BW6-761 scalar field.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a field element in Montgomery form, the same
// representation gnark-crypto uses internally so commitments and
// circuit witnesses never pay a conversion cost at the boundary.
type Element = fr.Element

// Modulus returns the field's prime modulus.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Zero returns the additive identity.
func Zero() Element {
	var e Element
	e.SetZero()
	return e
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.SetOne()
	return e
}

// FromInt64 builds an Element from a signed int64, reducing negative
// values modulo the field order.
func FromInt64(v int64) Element {
	var e Element
	e.SetInt64(v)
	return e
}

// FromBigInt builds an Element from a *big.Int, reducing modulo the
// field order.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.SetBigInt(v)
	return e
}

// Vector is a dense vector of field elements, used for z = (1, x, w)
// and for witness/public-input assignments throughout C2-C6.
type Vector []Element

// NewVector returns a zero-filled vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Add returns the element-wise sum of a and b; panics if their
// lengths differ, mirroring spec.md's ShapeMismatch precondition
// being checked by the caller before arithmetic is attempted.
func (v Vector) Add(o Vector) Vector {
	if len(v) != len(o) {
		panic("field: vector length mismatch")
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i].Add(&v[i], &o[i])
	}
	return out
}

// Scale returns v scaled by c.
func (v Vector) Scale(c Element) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i].Mul(&v[i], &c)
	}
	return out
}

// Hadamard returns the element-wise product of v and o.
func (v Vector) Hadamard(o Vector) Vector {
	if len(v) != len(o) {
		panic("field: vector length mismatch")
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i].Mul(&v[i], &o[i])
	}
	return out
}

// IsZero reports whether every element of v is zero, the check
// underlying check_satisfied across R1CS and CCS.
func (v Vector) IsZero() bool {
	for i := range v {
		if !v[i].IsZero() {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}
