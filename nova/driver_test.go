package nova_test

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/crypto/ecc/bn254"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/nova"
	"github.com/vocdoni/nova-go/r1cs"
	"github.com/vocdoni/nova-go/sparse"
)

// trivialR1CS is an always-satisfied single-constraint system
// (0=0), used to exercise Driver's bookkeeping (state, hash,
// serialization) independent of any particular F relation.
func trivialR1CS(nCols int) *r1cs.R1CS {
	return r1cs.New(sparse.New(1, nCols), sparse.New(1, nCols), sparse.New(1, nCols), 1)
}

func identityStepWitness(_ uint64, _, _, _, _ field.Vector) (field.Vector, error) {
	return field.Vector{field.FromInt64(1)}, nil
}

func TestDriverBaseStepAndVerify(t *testing.T) {
	c := qt.New(t)
	sys := trivialR1CS(3)
	pp := pedersen.Setup(&bn254.G1{}, 4)
	z0 := field.Vector{field.FromInt64(1)}

	d := nova.Init(pp, sys, identityStepWitness, z0, 0)
	c.Assert(d.Step(), qt.Equals, uint64(0))

	c.Assert(d.ProveStep(field.Vector{field.FromInt64(2)}, nil), qt.IsNil)
	c.Assert(d.Step(), qt.Equals, uint64(1))
	c.Assert(d.State()[0].String(), qt.Equals, field.FromInt64(2).String())

	c.Assert(d.CheckSatisfied(), qt.IsNil)

	proof := d.Proof()
	c.Assert(proof.I, qt.Equals, uint64(1))
	c.Assert(nova.Verify(sys, proof), qt.IsNil)
}

func TestDriverFromIVCProofResumes(t *testing.T) {
	c := qt.New(t)
	sys := trivialR1CS(3)
	pp := pedersen.Setup(&bn254.G1{}, 4)
	z0 := field.Vector{field.FromInt64(1)}

	d := nova.Init(pp, sys, identityStepWitness, z0, 0)
	c.Assert(d.ProveStep(field.Vector{field.FromInt64(2)}, nil), qt.IsNil)
	proof := d.Proof()

	resumed := nova.FromIVCProof(pp, sys, identityStepWitness, 0, proof)
	c.Assert(resumed.Step(), qt.Equals, uint64(1))
	c.Assert(resumed.CheckSatisfied(), qt.IsNil)
}

func TestVerifyRejectsNotEnoughSteps(t *testing.T) {
	c := qt.New(t)
	sys := trivialR1CS(3)
	pp := pedersen.Setup(&bn254.G1{}, 4)
	run, w := nova.Dummy(pp, 1, 1)
	proof := &nova.IVCProof{I: 0, Z0: field.Vector{field.FromInt64(1)}, Zi: field.Vector{field.FromInt64(1)}, U: run, W: w}
	c.Assert(nova.Verify(sys, proof), qt.Equals, novaerrors.ErrNotEnoughSteps)
}

func TestVerifyRejectsTamperedHash(t *testing.T) {
	c := qt.New(t)
	sys := trivialR1CS(3)
	pp := pedersen.Setup(&bn254.G1{}, 4)
	z0 := field.Vector{field.FromInt64(1)}

	d := nova.Init(pp, sys, identityStepWitness, z0, 0)
	c.Assert(d.ProveStep(field.Vector{field.FromInt64(2)}, nil), qt.IsNil)
	proof := d.Proof()

	// Flip one bit of the recorded public hash (spec.md §8's
	// bit-flip-detection scenario).
	tampered := proof.U.X[0].BigInt(new(big.Int))
	tampered.Xor(tampered, big.NewInt(1))
	proof.U.X[0].SetBigInt(tampered)

	c.Assert(nova.Verify(sys, proof), qt.Equals, novaerrors.ErrIVCVerificationFail)
}

func TestMaxStepRejectsOverrun(t *testing.T) {
	c := qt.New(t)
	sys := trivialR1CS(3)
	pp := pedersen.Setup(&bn254.G1{}, 4)
	z0 := field.Vector{field.FromInt64(1)}

	d := nova.Init(pp, sys, identityStepWitness, z0, 1)
	c.Assert(d.ProveStep(field.Vector{field.FromInt64(2)}, nil), qt.IsNil)
	c.Assert(d.ProveStep(field.Vector{field.FromInt64(3)}, nil), qt.Equals, novaerrors.ErrMaxStep)
}
