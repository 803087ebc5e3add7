package types

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
)

// UseGPUProver selects the ICICLE-accelerated Groth16 backend for the
// decider's proving/setup calls when built with the icicle tag.
var UseGPUProver bool

// ProverFunc defines a function type that matches the signature needed for zkSNARK proving.
// The function is generic enough to handle all circuit types.
type ProverFunc func(
	curve ecc.ID,
	ccs constraint.ConstraintSystem,
	pk groth16.ProvingKey,
	assignment frontend.Circuit,
	opts ...backend.ProverOption,
) (groth16.Proof, error)
