package field_test

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/field"
)

func TestZeroOne(t *testing.T) {
	c := qt.New(t)
	c.Assert(field.Zero().IsZero(), qt.IsTrue)
	one := field.One()
	c.Assert(one.IsZero(), qt.IsFalse)
	two := field.FromInt64(2)
	c.Assert(one.Equal(&two), qt.IsFalse)
}

func TestFromInt64AndBigInt(t *testing.T) {
	c := qt.New(t)
	a := field.FromInt64(7)
	b := field.FromBigInt(big.NewInt(7))
	c.Assert(a.Equal(&b), qt.IsTrue)

	neg := field.FromInt64(-1)
	modMinusOne := field.FromBigInt(new(big.Int).Sub(field.Modulus(), big.NewInt(1)))
	c.Assert(neg.Equal(&modMinusOne), qt.IsTrue)
}

func TestVectorAdd(t *testing.T) {
	c := qt.New(t)
	a := field.Vector{field.FromInt64(1), field.FromInt64(2)}
	b := field.Vector{field.FromInt64(3), field.FromInt64(4)}
	sum := a.Add(b)
	want := field.Vector{field.FromInt64(4), field.FromInt64(6)}
	c.Assert(sum[0].Equal(&want[0]), qt.IsTrue)
	c.Assert(sum[1].Equal(&want[1]), qt.IsTrue)
}

func TestVectorAddLengthMismatchPanics(t *testing.T) {
	c := qt.New(t)
	a := field.Vector{field.FromInt64(1)}
	b := field.Vector{field.FromInt64(1), field.FromInt64(2)}
	c.Assert(func() { a.Add(b) }, qt.PanicMatches, "field: vector length mismatch")
}

func TestVectorScale(t *testing.T) {
	c := qt.New(t)
	v := field.Vector{field.FromInt64(2), field.FromInt64(3)}
	scaled := v.Scale(field.FromInt64(5))
	want := field.Vector{field.FromInt64(10), field.FromInt64(15)}
	c.Assert(scaled[0].Equal(&want[0]), qt.IsTrue)
	c.Assert(scaled[1].Equal(&want[1]), qt.IsTrue)
}

func TestVectorHadamard(t *testing.T) {
	c := qt.New(t)
	a := field.Vector{field.FromInt64(2), field.FromInt64(3)}
	b := field.Vector{field.FromInt64(4), field.FromInt64(5)}
	prod := a.Hadamard(b)
	want := field.Vector{field.FromInt64(8), field.FromInt64(15)}
	c.Assert(prod[0].Equal(&want[0]), qt.IsTrue)
	c.Assert(prod[1].Equal(&want[1]), qt.IsTrue)
}

func TestVectorIsZero(t *testing.T) {
	c := qt.New(t)
	c.Assert(field.NewVector(3).IsZero(), qt.IsTrue)
	nz := field.Vector{field.Zero(), field.FromInt64(1)}
	c.Assert(nz.IsZero(), qt.IsFalse)
}

func TestVectorCloneIsIndependent(t *testing.T) {
	c := qt.New(t)
	v := field.Vector{field.FromInt64(1), field.FromInt64(2)}
	clone := v.Clone()
	clone[0] = field.FromInt64(99)
	c.Assert(v[0].Equal(&clone[0]), qt.IsFalse)
}
