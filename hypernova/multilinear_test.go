package hypernova

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/field"
)

func TestEvalMLEAtBooleanPointsMatchesVector(t *testing.T) {
	c := qt.New(t)
	v := field.Vector{field.FromInt64(10), field.FromInt64(20), field.FromInt64(30), field.FromInt64(40)}
	points := [][]int64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for idx, bits := range points {
		r := field.Vector{field.FromInt64(bits[0]), field.FromInt64(bits[1])}
		got := EvalMLE(v, r)
		c.Assert(got.Equal(&v[idx]), qt.IsTrue, qt.Commentf("point %v", bits))
	}
}

func TestEvalMLEPadsToPowerOfTwo(t *testing.T) {
	c := qt.New(t)
	v := field.Vector{field.FromInt64(5), field.FromInt64(7), field.FromInt64(9)}
	// index 3 (r=(1,1)) falls past len(v)=3, so the implicit zero pad applies.
	r := field.Vector{field.One(), field.One()}
	got := EvalMLE(v, r)
	c.Assert(got.IsZero(), qt.IsTrue)
}

func TestEqEvalAtPointMatchesTableAtBooleanPoint(t *testing.T) {
	c := qt.New(t)
	beta := field.Vector{field.One(), field.Zero(), field.One()}
	table := buildEqTable(beta)
	// index encodes beta's own bits (1,0,1) = binary 101 = 5
	want := table[5]
	got := EqEvalAtPoint(beta, beta)
	c.Assert(got.Equal(&want), qt.IsTrue)
	one := field.One()
	c.Assert(got.Equal(&one), qt.IsTrue)
}

func TestEqEvalAtPointZeroWhenPointsDiffer(t *testing.T) {
	c := qt.New(t)
	beta := field.Vector{field.One(), field.Zero()}
	r := field.Vector{field.Zero(), field.Zero()}
	got := EqEvalAtPoint(beta, r)
	c.Assert(got.IsZero(), qt.IsTrue)
}
