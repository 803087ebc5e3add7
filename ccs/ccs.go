// Package ccs implements the Customizable Constraint System
// arithmetization HyperNova folds (spec.md §4.1):
// CCS = {M_0..M_{t-1}, S_0..S_{q-1}, c_0..c_{q-1}}, relation
// ∑_j c_j·∏_{k∈S_j}(M_k z) = 0. R1CS is the special case t=3, q=2,
// S_0={0,1}, S_1={2}, c_0=1, c_1=−1, and this package implements both
// directions of that conversion (spec.md §8's round-trip law).
package ccs

import (
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/r1cs"
	"github.com/vocdoni/nova-go/sparse"
)

// CCS holds the matrix set M, the multiset structure S, and the
// coefficients c of the customizable constraint relation.
type CCS struct {
	M []*sparse.Matrix
	S [][]int
	C []field.Element
	L int
}

// NRows returns the number of constraints m.
func (c *CCS) NRows() int { return c.M[0].NRows }

// NCols returns the width of z.
func (c *CCS) NCols() int { return c.M[0].NCols }

// EvalRelation computes e[i] = ∑_j c_j · ∏_{k∈S_j} (M_k z)[i].
// check_satisfied is e.IsZero().
func (c *CCS) EvalRelation(z field.Vector) (field.Vector, error) {
	mz := make([]field.Vector, len(c.M))
	for k, mk := range c.M {
		v, err := mk.MulVec(z)
		if err != nil {
			return nil, err
		}
		mz[k] = v
	}

	m := c.NRows()
	e := make(field.Vector, m)
	for j, sj := range c.S {
		prod := make(field.Vector, m)
		for i := range prod {
			prod[i] = field.One()
		}
		for _, k := range sj {
			for i := range prod {
				prod[i].Mul(&prod[i], &mz[k][i])
			}
		}
		scaled := prod.Scale(c.C[j])
		for i := range e {
			e[i].Add(&e[i], &scaled[i])
		}
	}
	return e, nil
}

// CheckSatisfied reports whether z satisfies the CCS relation.
func (c *CCS) CheckSatisfied(z field.Vector) error {
	if len(z) != c.NCols() {
		return novaerrors.ErrShapeMismatch
	}
	e, err := c.EvalRelation(z)
	if err != nil {
		return err
	}
	if !e.IsZero() {
		return novaerrors.ErrNotSatisfied
	}
	return nil
}

// FromR1CS converts an R1CS into the canonical CCS form:
// t=3 (M_0=A, M_1=B, M_2=C), q=2, S_0={0,1}, S_1={2}, c_0=1, c_1=-1.
func FromR1CS(r *r1cs.R1CS) *CCS {
	negOne := field.FromInt64(-1)
	return &CCS{
		M: []*sparse.Matrix{r.A, r.B, r.C},
		S: [][]int{{0, 1}, {2}},
		C: []field.Element{field.One(), negOne},
		L: r.L,
	}
}

// ToR1CS recovers an R1CS from a CCS built with the canonical
// t=3/q=2 shape FromR1CS produces. Returns ConversionError if the
// CCS does not have that exact shape (any other CCS has no R1CS
// equivalent in general).
func ToR1CS(c *CCS) (*r1cs.R1CS, error) {
	if len(c.M) != 3 || len(c.S) != 2 || len(c.C) != 2 {
		return nil, novaerrors.ErrConversionError
	}
	if len(c.S[0]) != 2 || c.S[0][0] != 0 || c.S[0][1] != 1 {
		return nil, novaerrors.ErrConversionError
	}
	if len(c.S[1]) != 1 || c.S[1][0] != 2 {
		return nil, novaerrors.ErrConversionError
	}
	one := field.One()
	negOne := field.FromInt64(-1)
	if !c.C[0].Equal(&one) || !c.C[1].Equal(&negOne) {
		return nil, novaerrors.ErrConversionError
	}
	return r1cs.New(c.M[0], c.M[1], c.M[2], c.L), nil
}
