// Package ecc defines the curve-point abstraction shared by every
// elliptic-curve implementation nova-go folds over, plus the
// CycleFold pairing between a main curve C1 and its auxiliary curve
// C2 (C2's scalar field equals C1's base field).
package ecc

import "math/big"

// Point is implemented by every curve group element nova-go commits
// to or folds. Mutating methods write into the receiver so call sites
// can reuse allocations across folding steps.
type Point interface {
	// New returns the identity element of the same curve as the receiver.
	New() Point
	// Order returns the order of the curve's scalar field.
	Order() *big.Int
	// Add sets the receiver to a+b.
	Add(a, b Point)
	// SafeAdd is the concurrency-safe variant of Add.
	SafeAdd(a, b Point)
	// ScalarMult sets the receiver to scalar*a.
	ScalarMult(a Point, scalar *big.Int)
	// ScalarBaseMult sets the receiver to scalar*G, G the curve generator.
	ScalarBaseMult(scalar *big.Int)
	Marshal() []byte
	Unmarshal(buf []byte) error
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(buf []byte) error
	MarshalCBOR() ([]byte, error)
	UnmarshalCBOR(buf []byte) error
	Equal(a Point) bool
	Neg(a Point)
	SetZero()
	Set(a Point)
	SetGenerator()
	String() string
	// Point returns the affine (x, y) coordinates of the receiver.
	Point() (*big.Int, *big.Int)
	// SetPoint returns a new point set to the given affine coordinates.
	SetPoint(x, y *big.Int) Point
	// Type returns the curve's identifier string.
	Type() string
}

// Cycle pairs a main curve C1 with its CycleFold auxiliary curve C2:
// C2's scalar field must equal C1's base field, so a C1 scalar
// multiplication can be expressed as a native C2 circuit and folded
// on its own track. Base and Scalar return representative points of
// each curve so callers can reach Type()/New()/Order() for the
// pairing the preprocess step wires up.
type Cycle struct {
	base   Point
	scalar Point
}

// NewCycle builds a Cycle from a main curve point and its auxiliary
// curve counterpart. The caller is responsible for pairing curves
// whose scalar/base fields actually match (BN254/BW6-761 is the pair
// this core ships).
func NewCycle(base, scalar Point) Cycle {
	return Cycle{base: base, scalar: scalar}
}

// Base returns the main curve C1.
func (c Cycle) Base() Point { return c.base }

// Scalar returns the auxiliary curve C2.
func (c Cycle) Scalar() Point { return c.scalar }
