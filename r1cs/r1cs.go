// Package r1cs implements relaxed rank-1 constraint systems, the
// arithmetization Nova folds (spec.md §4.1): z = (1, x, w),
// (Az)∘(Bz) = u·Cz + E, with the non-relaxed relation recovered at
// u=1, E=0.
package r1cs

import (
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/sparse"
)

// R1CS holds the three constraint matrices and the public-input
// width l (z's layout is (1, x_1..x_l, w_1..w_{n-l-1})).
type R1CS struct {
	A, B, C *sparse.Matrix
	L       int
}

// New returns an R1CS with matrices of the given shape; L is the
// public-input count, not counting the implicit leading 1.
func New(a, b, c *sparse.Matrix, l int) *R1CS {
	return &R1CS{A: a, B: b, C: c, L: l}
}

// NRows returns the number of constraints m.
func (r *R1CS) NRows() int { return r.A.NRows }

// NCols returns the width of z.
func (r *R1CS) NCols() int { return r.A.NCols }

// Instance is a relaxed R1CS running instance: committed error/witness
// terms live in the caller's commitment package (C3); this struct
// carries only the native scalar state the relation needs, u and x.
type Instance struct {
	U field.Element
	X field.Vector
}

// Witness carries the relaxed witness's native scalar parts, W and E.
type Witness struct {
	W field.Vector
	E field.Vector
}

// Z assembles the full assignment z = (1, x, w) from an Instance/Witness pair.
func Z(inst *Instance, w *Witness) field.Vector {
	z := make(field.Vector, 0, 1+len(inst.X)+len(w.W))
	z = append(z, field.One())
	z = append(z, inst.X...)
	z = append(z, w.W...)
	return z
}

// EvalRelation computes e = (Az)∘(Bz) − u·(Cz) for the given z and u.
// check_satisfied is e.IsZero(). Non-relaxed R1CS is the special case
// u=1 (and E, held by the caller's witness, must then be all-zero).
func (r *R1CS) EvalRelation(z field.Vector, u field.Element) (field.Vector, error) {
	az, err := r.A.MulVec(z)
	if err != nil {
		return nil, err
	}
	bz, err := r.B.MulVec(z)
	if err != nil {
		return nil, err
	}
	cz, err := r.C.MulVec(z)
	if err != nil {
		return nil, err
	}
	ab := az.Hadamard(bz)
	ucz := cz.Scale(u)
	e := make(field.Vector, len(ab))
	for i := range ab {
		e[i].Sub(&ab[i], &ucz[i])
	}
	return e, nil
}

// CheckSatisfied reports whether (inst, w) satisfies the relaxed
// relation (Az)∘(Bz) = u·Cz + E, i.e. eval_relation(z) - E is zero.
func (r *R1CS) CheckSatisfied(inst *Instance, w *Witness) error {
	z := Z(inst, w)
	if len(z) != r.NCols() {
		return novaerrors.ErrShapeMismatch
	}
	e, err := r.EvalRelation(z, inst.U)
	if err != nil {
		return err
	}
	if len(e) != len(w.E) {
		return novaerrors.ErrShapeMismatch
	}
	diff := make(field.Vector, len(e))
	for i := range e {
		diff[i].Sub(&e[i], &w.E[i])
	}
	if !diff.IsZero() {
		return novaerrors.ErrNotSatisfied
	}
	return nil
}
