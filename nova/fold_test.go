package nova_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/crypto/ecc/bn254"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/nova"
	"github.com/vocdoni/nova-go/r1cs"
	"github.com/vocdoni/nova-go/sparse"
)

// squareR1CS is z=(1,x,w) with the constraint x*x=w.
func squareR1CS() *r1cs.R1CS {
	a := sparse.New(1, 3)
	a.Set(0, 1, field.One())
	b := sparse.New(1, 3)
	b.Set(0, 1, field.One())
	c := sparse.New(1, 3)
	c.Set(0, 2, field.One())
	return r1cs.New(a, b, c, 1)
}

// TestCrossTermIdentity checks CrossTerm's documented closed form: for
// two non-relaxed (E=0, u=1) satisfying assignments, folding them with
// challenge r produces an error term exactly r*T.
func TestCrossTermIdentity(t *testing.T) {
	c := qt.New(t)
	sys := squareR1CS()

	x1, x2 := field.FromInt64(3), field.FromInt64(5)
	z1 := field.Vector{field.One(), x1, field.FromInt64(9)}
	z2 := field.Vector{field.One(), x2, field.FromInt64(25)}
	u1, u2 := field.One(), field.One()

	tVec, err := nova.CrossTerm(sys, z1, u1, z2, u2)
	c.Assert(err, qt.IsNil)

	r := field.FromInt64(7)
	zr := z1.Add(z2.Scale(r))
	var ur field.Element
	ur.Mul(&r, &u2)
	ur.Add(&ur, &u1)

	e, err := sys.EvalRelation(zr, ur)
	c.Assert(err, qt.IsNil)

	want := tVec.Scale(r)
	for i := range e {
		c.Assert(e[i].Equal(&want[i]), qt.IsTrue)
	}
}

func TestFoldInstanceAndWitnessRoundTrip(t *testing.T) {
	c := qt.New(t)
	sys := squareR1CS()
	pp := pedersen.Setup(&bn254.G1{}, 4)

	x1 := field.FromInt64(3)
	w1 := field.Vector{field.FromInt64(9)}
	x2 := field.FromInt64(5)
	w2 := field.Vector{field.FromInt64(25)}

	cmW1, err := pedersen.Commit(pp, w1, field.Zero(), false)
	c.Assert(err, qt.IsNil)
	cmW2, err := pedersen.Commit(pp, w2, field.Zero(), false)
	c.Assert(err, qt.IsNil)
	zeroCm, err := pedersen.Commit(pp, field.NewVector(0), field.Zero(), false)
	c.Assert(err, qt.IsNil)

	running := &nova.CommittedInstance{CmE: zeroCm, CmW: cmW1, U: field.One(), X: field.Vector{x1}}
	fresh := &nova.CommittedInstance{CmE: zeroCm, CmW: cmW2, U: field.One(), X: field.Vector{x2}}
	runningW := &nova.Witness{W: w1, E: field.NewVector(1), RW: field.Zero(), RE: field.Zero()}
	freshW := &nova.Witness{W: w2, E: field.NewVector(1), RW: field.Zero(), RE: field.Zero()}

	z1 := r1cs.Z(&r1cs.Instance{U: running.U, X: running.X}, &r1cs.Witness{W: runningW.W, E: runningW.E})
	z2 := r1cs.Z(&r1cs.Instance{U: fresh.U, X: fresh.X}, &r1cs.Witness{W: freshW.W, E: freshW.E})
	tVec, err := nova.CrossTerm(sys, z1, running.U, z2, fresh.U)
	c.Assert(err, qt.IsNil)

	cmT, err := pedersen.Commit(pp, tVec, field.Zero(), false)
	c.Assert(err, qt.IsNil)

	r := field.FromInt64(7)
	folded := nova.FoldInstance(zeroCm, running, fresh, cmT, r)
	foldedW := nova.FoldWitness(runningW, freshW, tVec, r)

	inst := &r1cs.Instance{U: folded.U, X: folded.X}
	wit := &r1cs.Witness{W: foldedW.W, E: foldedW.E}
	c.Assert(sys.CheckSatisfied(inst, wit), qt.IsNil)
}
