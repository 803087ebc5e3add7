package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/vocdoni/nova-go/field"
)

// CubicFCircuit is the canonical one-variable Nova step function
// (spec.md §8 scenario 1): F(x) = x^3 + x + 5. External inputs are
// ignored.
type CubicFCircuit struct{}

func (CubicFCircuit) Arity() int { return 1 }

func (CubicFCircuit) Native(_ uint64, z, _ field.Vector) (field.Vector, error) {
	x := z[0]
	var x2, x3, out field.Element
	x2.Mul(&x, &x)
	x3.Mul(&x2, &x)
	out.Add(&x3, &x)
	five := field.FromInt64(5)
	out.Add(&out, &five)
	return field.Vector{out}, nil
}

func (CubicFCircuit) Gadget(api frontend.API, _ frontend.Variable, z, _ []frontend.Variable) ([]frontend.Variable, error) {
	x := z[0]
	x2 := api.Mul(x, x)
	x3 := api.Mul(x2, x)
	out := api.Add(x3, x)
	out = api.Add(out, 5)
	return []frontend.Variable{out}, nil
}

// IdentityFCircuit is the no-op step function of spec.md §8 scenario
// 2: F(z) = z for an arbitrary state width. External inputs are
// ignored.
type IdentityFCircuit struct {
	StateLen int
}

func (f IdentityFCircuit) Arity() int { return f.StateLen }

func (IdentityFCircuit) Native(_ uint64, z, _ field.Vector) (field.Vector, error) {
	out := make(field.Vector, len(z))
	copy(out, z)
	return out, nil
}

func (IdentityFCircuit) Gadget(_ frontend.API, _ frontend.Variable, z, _ []frontend.Variable) ([]frontend.Variable, error) {
	out := make([]frontend.Variable, len(z))
	copy(out, z)
	return out, nil
}
