// Package hypernova implements HyperNova's NIMFS multi-folding scheme
// over CCS (spec.md §4.1, §4.4 final paragraph): a sum-check proof
// over a composed multilinear polynomial folds a fresh CCCS instance
// into a running LCCCS one, refreshing the running instance's
// evaluation point and claimed values each round. Grounded on the
// same single-owner driver shape as package nova (teacher's
// state/state.go pattern), generalized to CCS's linearized-instance
// bookkeeping since the teacher has no CCS/HyperNova code of its own.
package hypernova

import (
	"github.com/vocdoni/nova-go/field"
)

// numVars returns the smallest s with 2^s >= n.
func numVars(n int) int {
	s := 0
	for (1 << s) < n {
		s++
	}
	return s
}

// padPow2 right-pads v with zeros up to length 2^numVars(len(v)).
func padPow2(v field.Vector) field.Vector {
	s := numVars(len(v))
	n := 1 << s
	if len(v) == n {
		return v
	}
	out := make(field.Vector, n)
	copy(out, v)
	return out
}

// foldAtPoint performs one step of the standard sequential multilinear
// fold: given a table of 2^k evaluations over {0,1}^k, it returns the
// 2^(k-1) evaluations of the same multilinear polynomial with its
// first variable (the most significant bit of the table index, as in
// buildEqTable) fixed to p (p need not be boolean).
func foldAtPoint(table field.Vector, p field.Element) field.Vector {
	half := len(table) / 2
	out := make(field.Vector, half)
	for i := 0; i < half; i++ {
		var diff, term field.Element
		diff.Sub(&table[half+i], &table[i])
		term.Mul(&diff, &p)
		out[i].Add(&table[i], &term)
	}
	return out
}

// EvalMLE evaluates the multilinear extension of v (implicitly
// zero-padded to 2^s entries) at r ∈ F^s by repeatedly folding one
// variable at a time.
func EvalMLE(v field.Vector, r field.Vector) field.Element {
	cur := padPow2(v)
	for _, ri := range r {
		cur = foldAtPoint(cur, ri)
	}
	if len(cur) == 0 {
		return field.Zero()
	}
	return cur[0]
}

// buildEqTable returns the 2^len(beta) evaluations of eq(beta, ·)
// over the full Boolean hypercube, used as the sum-check's weighting
// factor.
func buildEqTable(beta field.Vector) field.Vector {
	table := field.Vector{field.One()}
	for _, b := range beta {
		next := make(field.Vector, len(table)*2)
		one := field.One()
		var oneMinusB field.Element
		oneMinusB.Sub(&one, &b)
		for i, t := range table {
			var lo, hi field.Element
			lo.Mul(&t, &oneMinusB)
			hi.Mul(&t, &b)
			next[2*i] = lo
			next[2*i+1] = hi
		}
		table = next
	}
	return table
}

// EqEvalAtPoint evaluates eq(beta, r) = ∏_i (beta_i r_i + (1-beta_i)(1-r_i))
// directly, without materializing a table — the closed form the
// sum-check verifier uses since it never sees the prover's tables.
func EqEvalAtPoint(beta, r field.Vector) field.Element {
	out := field.One()
	one := field.One()
	for i := range beta {
		var a, b, sum field.Element
		a.Mul(&beta[i], &r[i])
		var negB, negR field.Element
		negB.Sub(&one, &beta[i])
		negR.Sub(&one, &r[i])
		b.Mul(&negB, &negR)
		sum.Add(&a, &b)
		out.Mul(&out, &sum)
	}
	return out
}
