package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/vocdoni/nova-go/field"
)

// FCircuit is the user-supplied per-step state transition, in both
// its native form (run by the folding driver outside any circuit,
// spec.md §4.4 step 1) and its in-circuit gadget form (embedded into
// the augmented circuit, spec.md §4.5).
type FCircuit interface {
	// Arity returns len(z), the IVC state vector's width.
	Arity() int

	// Native computes z_{i+1} = F(i, z_i, ext) outside any circuit.
	Native(i uint64, z field.Vector, ext field.Vector) (field.Vector, error)

	// Gadget enforces the same transition inside the augmented
	// circuit and returns the in-circuit z_{i+1}.
	Gadget(api frontend.API, i frontend.Variable, z []frontend.Variable, ext []frontend.Variable) ([]frontend.Variable, error)
}
