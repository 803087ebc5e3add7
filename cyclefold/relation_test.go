package cyclefold

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func addOp() Op {
	return ComputeAdd(big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4))
}

func TestRelationCheckSatisfiedForComputedAdd(t *testing.T) {
	c := qt.New(t)
	rel := &Relation{NOps: 1}
	z := Z([]Op{addOp()})
	c.Assert(rel.CheckSatisfied(z), qt.IsNil)
}

func TestRelationRejectsTamperedOp(t *testing.T) {
	c := qt.New(t)
	rel := &Relation{NOps: 1}
	op := addOp()
	one := one()
	op.Y3.Add(&op.Y3, &one)
	z := Z([]Op{op})
	c.Assert(rel.CheckSatisfied(z), qt.Not(qt.IsNil))
}

func TestRelationMultipleOps(t *testing.T) {
	c := qt.New(t)
	rel := &Relation{NOps: 2}
	op1 := addOp()
	op2 := ComputeAdd(big.NewInt(5), big.NewInt(6), big.NewInt(7), big.NewInt(8))
	z := Z([]Op{op1, op2})
	c.Assert(len(z), qt.Equals, rel.NCols())
	c.Assert(rel.CheckSatisfied(z), qt.IsNil)
}

func TestRelationCheckRelaxedMatchesNonRelaxed(t *testing.T) {
	c := qt.New(t)
	rel := &Relation{NOps: 1}
	z := Z([]Op{addOp()})
	e := newVector(rel.NRows())
	c.Assert(rel.CheckRelaxed(z, one(), e), qt.IsNil)
}
