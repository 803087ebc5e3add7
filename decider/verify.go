package decider

import (
	"math/big"

	gnarkecc "github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/nova-go/circuit"
	"github.com/vocdoni/nova-go/commitment/kzg"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/transcript"
)

// Verify checks a decider Proof against its public inputs (spec.md
// §4.7): it rejects i<=1 with NotEnoughSteps, re-derives chal_W/chal_E
// from the same transcript Prove used and checks they match the
// claimed ones, verifies both KZG openings, and verifies the Groth16
// SNARK against pub's public-input assignment for
// circuit.DeciderCircuit.
func Verify(pp *Params, pub *PublicInputs, proof *Proof) error {
	if pub.I <= 1 {
		return novaerrors.ErrNotEnoughSteps
	}

	tr := transcript.New("nova-go/decider")
	tr.Absorb(pub.FinalU)
	tr.AbsorbVector(pub.FinalX)
	ex, _ := pub.FinalCmE.Point.Point()
	wx, _ := pub.FinalCmW.Point.Point()
	tr.Absorb(field.FromBigInt(ex))
	tr.Absorb(field.FromBigInt(wx))
	wantChalW := tr.GetChallenge()
	wantChalE := tr.GetChallenge()
	if wantChalW.BigInt(new(big.Int)).Cmp(pub.ChalW.BigInt(new(big.Int))) != 0 ||
		wantChalE.BigInt(new(big.Int)).Cmp(pub.ChalE.BigInt(new(big.Int))) != 0 {
		return novaerrors.ErrIVCVerificationFail
	}

	if err := kzg.Verify(pp.KZG, pub.FinalCmWKZG, proof.PiW, pub.ChalW); err != nil {
		return err
	}
	if err := kzg.Verify(pp.KZG, pub.FinalCmEKZG, proof.PiE, pub.ChalE); err != nil {
		return err
	}

	publicWitness := &circuit.DeciderCircuit{
		I:  pub.I,
		Z0: fieldToVariables(pub.Z0),
		Zn: fieldToVariables(pub.Zn),

		FinalCmE: affinePoint(pub.FinalCmE),
		FinalCmW: affinePoint(pub.FinalCmW),
		FinalU:   pub.FinalU.BigInt(new(big.Int)),
		FinalX:   fieldToVariables(pub.FinalX),

		ChalW: pub.ChalW.BigInt(new(big.Int)),
		ChalE: pub.ChalE.BigInt(new(big.Int)),
	}
	w, err := frontend.NewWitness(publicWitness, gnarkecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return err
	}
	if err := groth16.Verify(proof.SNARK, pp.VK, w); err != nil {
		return novaerrors.ErrSNARKVerificationFail
	}
	return nil
}
