package decider_test

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"

	"github.com/vocdoni/nova-go/commitment/kzg"
	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/crypto/ecc/bn254"
	"github.com/vocdoni/nova-go/decider"
	"github.com/vocdoni/nova-go/field"
)

// TestPrepareCalldataSmoke exercises the ABI-encoding path end to end
// with a real (cheap) KZG opening and Pedersen commitment, and a
// zero-value Groth16 proof — PrepareCalldata only reads its
// coordinates, it never checks the SNARK verifies.
func TestPrepareCalldataSmoke(t *testing.T) {
	c := qt.New(t)

	srs, err := kzg.Setup(big.NewInt(123456789), 4)
	c.Assert(err, qt.IsNil)
	coeffs := field.Vector{field.FromInt64(1), field.FromInt64(2)}
	piW, err := kzg.Prove(srs, coeffs, field.FromInt64(5), false)
	c.Assert(err, qt.IsNil)
	piE, err := kzg.Prove(srs, coeffs, field.FromInt64(6), false)
	c.Assert(err, qt.IsNil)

	pp := pedersen.Setup(&bn254.G1{}, 4)
	cmW, err := pedersen.Commit(pp, field.Vector{field.FromInt64(9)}, field.Zero(), false)
	c.Assert(err, qt.IsNil)
	cmE, err := pedersen.Commit(pp, field.Vector{field.FromInt64(0)}, field.Zero(), false)
	c.Assert(err, qt.IsNil)
	cmT, err := pedersen.Commit(pp, field.Vector{field.FromInt64(1)}, field.Zero(), false)
	c.Assert(err, qt.IsNil)

	pub := &decider.PublicInputs{
		I:        2,
		Z0:       field.Vector{field.FromInt64(1)},
		Zn:       field.Vector{field.FromInt64(2)},
		FinalU:   field.One(),
		FinalX:   field.Vector{field.FromInt64(3)},
		FinalCmE: cmE,
		FinalCmW: cmW,
		ChalW:    field.FromInt64(5),
		ChalE:    field.FromInt64(6),
		EvalW:    piW.ClaimedValue,
		EvalE:    piE.ClaimedValue,
		CmT:      cmT,
		R:        field.FromInt64(7),
	}
	proof := &decider.Proof{
		SNARK: &groth16_bn254.Proof{},
		PiW:   piW,
		PiE:   piE,
		CmT:   cmT,
		R:     field.FromInt64(7),
		ChalW: field.FromInt64(5),
		ChalE: field.FromInt64(6),
	}

	data, err := decider.PrepareCalldata(pub, proof)
	c.Assert(err, qt.IsNil)
	c.Assert(len(data) > 0, qt.IsTrue)
}
