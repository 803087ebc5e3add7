package debug

import (
	"fmt"
	"testing"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/vocdoni/nova-go/types"
)

// NewDebugProver creates a prover that runs test.IsSolved before normal
// proving, so a failing constraint is reported as a solver error with a
// trace instead of surfacing as an opaque groth16.Prove failure. This is
// used in test environments to debug the decider circuit (package
// decider), the single Groth16 circuit this repo produces proofs for —
// unlike the teacher's multi-circuit debug prover, there's no per-type
// placeholder dance here: the decider circuit carries no fixed
// recursive-verification keys, so the assignment can double as its own
// placeholder.
func NewDebugProver(t *testing.T) types.ProverFunc {
	return func(
		curve ecc.ID,
		ccs constraint.ConstraintSystem,
		pk groth16.ProvingKey,
		assignment frontend.Circuit,
		opts ...backend.ProverOption,
	) (groth16.Proof, error) {
		assert := test.NewAssert(t)
		start := time.Now()
		assert.SolvingSucceeded(assignment, assignment,
			test.WithCurves(curve),
			test.WithBackends(backend.GROTH16),
			test.WithProverOpts(opts...),
		)
		t.Logf("debug prover: solving succeeded for %T, took %s", assignment, time.Since(start))

		w, err := frontend.NewWitness(assignment, curve.ScalarField())
		if err != nil {
			return nil, fmt.Errorf("failed to create witness: %w", err)
		}
		return groth16.Prove(ccs, pk, w, opts...)
	}
}
