package ccs_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/ccs"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/r1cs"
	"github.com/vocdoni/nova-go/sparse"
)

func squareR1CS() *r1cs.R1CS {
	a := sparse.New(1, 3)
	a.Set(0, 1, field.One())
	b := sparse.New(1, 3)
	b.Set(0, 1, field.One())
	c := sparse.New(1, 3)
	c.Set(0, 2, field.One())
	return r1cs.New(a, b, c, 1)
}

func TestFromR1CSRoundTrip(t *testing.T) {
	c := qt.New(t)
	sys := squareR1CS()
	converted := ccs.FromR1CS(sys)
	back, err := ccs.ToR1CS(converted)
	c.Assert(err, qt.IsNil)
	c.Assert(back.L, qt.Equals, sys.L)
	c.Assert(back.NCols(), qt.Equals, sys.NCols())
}

func TestCheckSatisfiedMatchesR1CS(t *testing.T) {
	c := qt.New(t)
	sys := ccs.FromR1CS(squareR1CS())
	z := field.Vector{field.One(), field.FromInt64(3), field.FromInt64(9)}
	c.Assert(sys.CheckSatisfied(z), qt.IsNil)
}

func TestCheckSatisfiedRejectsBadZ(t *testing.T) {
	c := qt.New(t)
	sys := ccs.FromR1CS(squareR1CS())
	z := field.Vector{field.One(), field.FromInt64(3), field.FromInt64(8)}
	c.Assert(sys.CheckSatisfied(z), qt.Equals, novaerrors.ErrNotSatisfied)
}

func TestCheckSatisfiedShapeMismatch(t *testing.T) {
	c := qt.New(t)
	sys := ccs.FromR1CS(squareR1CS())
	c.Assert(sys.CheckSatisfied(field.NewVector(2)), qt.Equals, novaerrors.ErrShapeMismatch)
}

func TestToR1CSRejectsNonCanonicalShape(t *testing.T) {
	c := qt.New(t)
	bad := &ccs.CCS{
		M: []*sparse.Matrix{sparse.New(1, 1), sparse.New(1, 1)},
		S: [][]int{{0}},
		C: []field.Element{field.One()},
		L: 0,
	}
	_, err := ccs.ToR1CS(bad)
	c.Assert(err, qt.Equals, novaerrors.ErrConversionError)
}
