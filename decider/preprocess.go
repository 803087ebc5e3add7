package decider

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	gnarkr1cs "github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/algebra/emulated/sw_emulated"

	"github.com/vocdoni/nova-go/circuit"
	"github.com/vocdoni/nova-go/commitment/kzg"
	"github.com/vocdoni/nova-go/prover"
	"github.com/vocdoni/nova-go/r1cs"
)

// Params bundles everything Prove/Verify need: the KZG trusted setup
// sized for the folded witness/error vectors, and the Groth16 keys for
// circuit.DeciderCircuit compiled for a specific IVC's state width.
type Params struct {
	KZG *kzg.SRS
	CCS constraint.ConstraintSystem
	PK  groth16.ProvingKey
	VK  groth16.VerifyingKey
}

// Preprocess builds a decider.Params for an IVC whose per-step state
// vector has stateLen field elements and whose R1CS is sys: it derives
// a KZG SRS covering sys's witness/error vector lengths and compiles
// plus sets up circuit.DeciderCircuit (spec.md §4.7's "Preprocess"
// step, alongside the Nova public parameters package nova's Init
// already derives). tau is the KZG trusted-setup trapdoor; production
// callers must discard it immediately after this call returns.
func Preprocess(sys *r1cs.R1CS, stateLen int, tau *big.Int) (*Params, error) {
	maxDegree := uint64(sys.NCols())
	if sys.NRows() > sys.NCols() {
		maxDegree = uint64(sys.NRows())
	}
	srs, err := kzg.Setup(tau, maxDegree)
	if err != nil {
		return nil, err
	}

	placeholder := &circuit.DeciderCircuit{
		Z0:       make([]frontend.Variable, stateLen),
		Zn:       make([]frontend.Variable, stateLen),
		FinalX:   make([]frontend.Variable, 1),
		Running:  placeholderInstance(1),
		Fresh:    placeholderInstance(0),
		CmT:      sw_emulated.AffinePoint[circuit.BaseField]{},
	}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), gnarkr1cs.NewBuilder, placeholder)
	if err != nil {
		return nil, err
	}
	pk, vk, err := prover.Setup(ccs)
	if err != nil {
		return nil, err
	}
	return &Params{KZG: srs, CCS: ccs, PK: pk, VK: vk}, nil
}

func placeholderInstance(xLen int) circuit.Instance {
	return circuit.Instance{X: make([]frontend.Variable, xLen)}
}
