package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/emulated/sw_emulated"
	"github.com/consensys/gnark/std/math/emulated"
)

// DeciderCircuit is the one-shot compression circuit the onchain
// decider (package decider) proves once per IVC proof (spec.md §4.7).
// It reruns the same fold AugmentedCircuit's Define performs on the
// last running/fresh pair, binds the result to the publicly-claimed
// final instance, and re-derives the two KZG evaluation challenges
// from the same kind of in-circuit transcript AugmentedCircuit uses —
// so a verifier checking this SNARK plus the two native KZG openings
// (package decider) never has to trust the prover's native fold or
// transcript arithmetic, only the same relation AugmentedCircuit
// already proves at every intermediate step.
//
// It does not re-verify the KZG commitment/evaluation pairing check
// or re-run the full CCS relation over eval_W/eval_E in-circuit: a
// pairing check over BN254 cannot be done cheaply inside a BN254
// circuit, so that check (and the relation check over the committed
// polynomials) stays native in decider.Verify, exactly where
// spec.md §4.7 places the two KZG openings outside the SNARK.
type DeciderCircuit struct {
	// Public inputs, carrying the decider.PublicInputs fields of the
	// same names (declared here in a different order).
	I  frontend.Variable   `gnark:",public"`
	Z0 []frontend.Variable `gnark:",public"`
	Zn []frontend.Variable `gnark:",public"`

	FinalCmE sw_emulated.AffinePoint[BaseField] `gnark:",public"`
	FinalCmW sw_emulated.AffinePoint[BaseField] `gnark:",public"`
	FinalU   frontend.Variable                  `gnark:",public"`
	FinalX   []frontend.Variable                `gnark:",public"`

	ChalW frontend.Variable `gnark:",public"`
	ChalE frontend.Variable `gnark:",public"`

	// Private witness: the last running/fresh instance pair and the
	// fold step's cross-term commitment and challenge.
	Running Instance
	Fresh   Instance
	CmT     sw_emulated.AffinePoint[BaseField]
	R       frontend.Variable
}

func (c *DeciderCircuit) Define(api frontend.API) error {
	curve, err := sw_emulated.New[BaseField, ScalarField](api, sw_emulated.GetBN254Params())
	if err != nil {
		FrontendError(api, "failed to build emulated curve", err)
		return err
	}
	scalarField, err := emulated.NewField[ScalarField](api)
	if err != nil {
		FrontendError(api, "failed to build emulated scalar field", err)
		return err
	}
	rElem := scalarField.NewElement(c.R)

	final := foldInstance(api, curve, &c.Running, &c.Fresh, &c.CmT, c.R, rElem)

	curve.AssertIsEqual(&final.CmE, &c.FinalCmE)
	curve.AssertIsEqual(&final.CmW, &c.FinalCmW)
	api.AssertIsEqual(final.U, c.FinalU)
	for i := range final.X {
		api.AssertIsEqual(final.X[i], c.FinalX[i])
	}

	tr, err := NewTranscript(api, "nova-go/decider")
	if err != nil {
		FrontendError(api, "failed to build in-circuit transcript", err)
		return err
	}
	absorbInstance(tr, final)
	chalW := tr.GetChallenge()
	chalE := tr.GetChallenge()
	api.AssertIsEqual(chalW, c.ChalW)
	api.AssertIsEqual(chalE, c.ChalE)
	return nil
}
