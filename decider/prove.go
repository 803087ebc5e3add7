package decider

import (
	"math/big"

	gnarkecc "github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/emulated/sw_emulated"
	"github.com/consensys/gnark/std/math/emulated"

	"github.com/vocdoni/nova-go/circuit"
	"github.com/vocdoni/nova-go/commitment/kzg"
	"github.com/vocdoni/nova-go/commitment/pedersen"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/nova"
	"github.com/vocdoni/nova-go/transcript"
	"github.com/vocdoni/nova-go/types"
)

// Prove runs spec.md §4.7's decider construction against a driver that
// has taken at least 2 steps: it reads U_final/W_final off the
// driver's current state, commits to W_final/E_final via KZG, draws
// the two evaluation challenges from a transcript seeded with
// U_final, opens both polynomials, and produces a Groth16 proof of
// circuit.DeciderCircuit attesting the last fold was done correctly.
func Prove(pp *Params, driver *nova.Driver, proveFn types.ProverFunc) (*Proof, *PublicInputs, error) {
	ivc := driver.Proof()
	if ivc.I <= 1 {
		return nil, nil, novaerrors.ErrNotEnoughSteps
	}
	last := driver.LastFold()
	if last == nil {
		return nil, nil, novaerrors.ErrNotEnoughSteps
	}

	finalU := ivc.U
	finalW := ivc.W

	cmWKZG, err := kzg.Commit(pp.KZG, finalW.W)
	if err != nil {
		return nil, nil, err
	}
	cmEKZG, err := kzg.Commit(pp.KZG, finalW.E)
	if err != nil {
		return nil, nil, err
	}

	tr := transcript.New("nova-go/decider")
	tr.Absorb(finalU.U)
	tr.AbsorbVector(finalU.X)
	ex, _ := finalU.CmE.Point.Point()
	wx, _ := finalU.CmW.Point.Point()
	tr.Absorb(field.FromBigInt(ex))
	tr.Absorb(field.FromBigInt(wx))
	chalW := tr.GetChallenge()
	chalE := tr.GetChallenge()

	piW, err := kzg.Prove(pp.KZG, finalW.W, chalW, false)
	if err != nil {
		return nil, nil, err
	}
	piE, err := kzg.Prove(pp.KZG, finalW.E, chalE, false)
	if err != nil {
		return nil, nil, err
	}

	assignment := &circuit.DeciderCircuit{
		I:  ivc.I,
		Z0: fieldToVariables(ivc.Z0),
		Zn: fieldToVariables(ivc.Zi),

		FinalCmE: affinePoint(finalU.CmE),
		FinalCmW: affinePoint(finalU.CmW),
		FinalU:   finalU.U.BigInt(new(big.Int)),
		FinalX:   fieldToVariables(finalU.X),

		ChalW: chalW.BigInt(new(big.Int)),
		ChalE: chalE.BigInt(new(big.Int)),

		Running: instanceAssignment(last.Running),
		Fresh:   instanceAssignment(last.Fresh),
		CmT:     affinePoint(last.CmT),
		R:       last.R.BigInt(new(big.Int)),
	}

	snark, err := proveFn(gnarkecc.BN254, pp.CCS, pp.PK, assignment)
	if err != nil {
		return nil, nil, err
	}

	proof := &Proof{
		SNARK: snark,
		PiW:   piW,
		PiE:   piE,
		CmT:   last.CmT,
		R:     last.R,
		ChalW: chalW,
		ChalE: chalE,
	}
	pub := &PublicInputs{
		I: ivc.I, Z0: ivc.Z0, Zn: ivc.Zi,
		FinalU: finalU.U, FinalX: finalU.X,
		FinalCmE: finalU.CmE, FinalCmW: finalU.CmW,
		FinalCmWKZG: cmWKZG, FinalCmEKZG: cmEKZG,
		ChalW: chalW, ChalE: chalE,
		EvalW: piW.ClaimedValue, EvalE: piE.ClaimedValue,
		CmT: last.CmT, R: last.R,
	}
	return proof, pub, nil
}

func fieldToVariables(v field.Vector) []frontend.Variable {
	out := make([]frontend.Variable, len(v))
	for i, e := range v {
		out[i] = e.BigInt(new(big.Int))
	}
	return out
}

func affinePoint(cm *pedersen.Commitment) sw_emulated.AffinePoint[circuit.BaseField] {
	x, y := cm.Point.Point()
	return sw_emulated.AffinePoint[circuit.BaseField]{
		X: emulated.ValueOf[circuit.BaseField](x),
		Y: emulated.ValueOf[circuit.BaseField](y),
	}
}

func instanceAssignment(u *nova.CommittedInstance) circuit.Instance {
	return circuit.Instance{
		CmE: affinePoint(u.CmE),
		CmW: affinePoint(u.CmW),
		U:   u.U.BigInt(new(big.Int)),
		X:   fieldToVariables(u.X),
	}
}
