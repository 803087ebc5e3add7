package decider_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/crypto/ecc/bn254"
	"github.com/vocdoni/nova-go/decider"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/nova"
	"github.com/vocdoni/nova-go/r1cs"
	"github.com/vocdoni/nova-go/sparse"
)

func trivialR1CS(nCols int) *r1cs.R1CS {
	return r1cs.New(sparse.New(1, nCols), sparse.New(1, nCols), sparse.New(1, nCols), 1)
}

func identityStepWitness(_ uint64, _, _, _, _ field.Vector) (field.Vector, error) {
	return field.Vector{field.FromInt64(1)}, nil
}

// TestProveRejectsNotEnoughSteps confirms decider.Prove checks the
// step count before touching pp, so a one-step driver is rejected
// without needing a real (expensive) Preprocess setup.
func TestProveRejectsNotEnoughSteps(t *testing.T) {
	c := qt.New(t)
	sys := trivialR1CS(3)
	pp := pedersen.Setup(&bn254.G1{}, 4)
	z0 := field.Vector{field.FromInt64(1)}

	d := nova.Init(pp, sys, identityStepWitness, z0, 0)
	c.Assert(d.ProveStep(field.Vector{field.FromInt64(2)}, nil), qt.IsNil)

	_, _, err := decider.Prove(nil, d, nil)
	c.Assert(err, qt.Equals, novaerrors.ErrNotEnoughSteps)
}

func TestVerifyRejectsNotEnoughSteps(t *testing.T) {
	c := qt.New(t)
	pub := &decider.PublicInputs{I: 1}
	err := decider.Verify(nil, pub, nil)
	c.Assert(err, qt.Equals, novaerrors.ErrNotEnoughSteps)
}
