package hypernova

import (
	"github.com/vocdoni/nova-go/field"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/transcript"
)

// Proof is a sum-check transcript: one set of degree-d round
// evaluations per variable, sent in the clear the way a non-succinct
// reference sum-check does (no circuit in this repository recomputes
// these rounds; no separate commitment scheme backs the round
// polynomials themselves in this core).
type Proof struct {
	RoundEvals [][]field.Element
}

// degree returns the round polynomial's degree: one for the eq factor
// plus the size of the largest CCS product term.
func degree(s [][]int) int {
	d := 0
	for _, sj := range s {
		if len(sj) > d {
			d = len(sj)
		}
	}
	return d + 1
}

// combinedSum evaluates Σ_i eq[i] · Σ_j c_j · ∏_{k∈Sj} m[k][i] over a
// table of matching length (the CCS relation, eq-weighted).
func combinedSum(eq field.Vector, m []field.Vector, s [][]int, c []field.Element) field.Element {
	total := field.Zero()
	for i := range eq {
		inner := field.Zero()
		for j, sj := range s {
			prod := field.One()
			for _, k := range sj {
				prod.Mul(&prod, &m[k][i])
			}
			var term field.Element
			term.Mul(&prod, &c[j])
			inner.Add(&inner, &term)
		}
		var scaled field.Element
		scaled.Mul(&inner, &eq[i])
		total.Add(&total, &scaled)
	}
	return total
}

// Prove runs the sum-check protocol over the composed polynomial
// g(x) = eq(x) · Σ_j c_j ∏_{k∈Sj} m[k](x), proving that its sum over
// the Boolean hypercube equals claimedSum (spec.md §4.4's NIMFS: "a
// sum-check proof over a composed polynomial"). eqTable and each
// m[k] must already be padded to the same power-of-two length.
func Prove(s [][]int, c []field.Element, eqTable field.Vector, m []field.Vector, claimedSum field.Element, tr *transcript.Transcript) (*Proof, field.Vector, error) {
	numVars := 0
	for (1 << numVars) < len(eqTable) {
		numVars++
	}
	d := degree(s)

	eq := eqTable
	tables := make([]field.Vector, len(m))
	copy(tables, m)

	proof := &Proof{RoundEvals: make([][]field.Element, numVars)}
	challenges := make(field.Vector, numVars)

	for round := 0; round < numVars; round++ {
		evals := make([]field.Element, d+1)
		for p := 0; p <= d; p++ {
			pf := field.FromInt64(int64(p))
			eqAtP := foldAtPoint(eq, pf)
			mAtP := make([]field.Vector, len(tables))
			for k := range tables {
				mAtP[k] = foldAtPoint(tables[k], pf)
			}
			evals[p] = combinedSum(eqAtP, mAtP, s, c)
		}
		proof.RoundEvals[round] = evals

		for _, e := range evals {
			tr.Absorb(e)
		}
		rj := tr.GetChallenge()
		challenges[round] = rj

		eq = foldAtPoint(eq, rj)
		for k := range tables {
			tables[k] = foldAtPoint(tables[k], rj)
		}
	}

	_ = claimedSum
	return proof, challenges, nil
}

// Verify replays the transcript the same way Prove did, checking at
// each round that evals[0]+evals[1] equals the running claimed sum,
// and returns the final challenge point plus the interpolated claimed
// value at that point — the caller is responsible for checking that
// value against eq(beta, point)·combine(v) using the v's it trusts
// (spec.md §4.4: "the in-circuit verifier reruns the sum-check
// verifier and the linear combination").
func Verify(claimedSum field.Element, proof *Proof, tr *transcript.Transcript) (field.Vector, field.Element, error) {
	running := claimedSum
	challenges := make(field.Vector, len(proof.RoundEvals))

	for round, evals := range proof.RoundEvals {
		if len(evals) < 2 {
			return nil, field.Zero(), novaerrors.ErrSumCheckVerifyFail
		}
		var sum field.Element
		sum.Add(&evals[0], &evals[1])
		if !sum.Equal(&running) {
			return nil, field.Zero(), novaerrors.ErrSumCheckVerifyFail
		}

		for _, e := range evals {
			tr.Absorb(e)
		}
		rj := tr.GetChallenge()
		challenges[round] = rj

		running = interpolate(evals, rj)
	}

	return challenges, running, nil
}

// interpolate evaluates, at x, the unique degree-len(evals)-1
// polynomial through (0, evals[0]), (1, evals[1]), ... via Lagrange
// interpolation over the small integer nodes 0..len(evals)-1.
func interpolate(evals []field.Element, x field.Element) field.Element {
	n := len(evals)
	result := field.Zero()
	for i := 0; i < n; i++ {
		term := evals[i]
		num := field.One()
		den := field.One()
		xi := field.FromInt64(int64(i))
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			xj := field.FromInt64(int64(j))
			var diffX, diffIJ field.Element
			diffX.Sub(&x, &xj)
			diffIJ.Sub(&xi, &xj)
			num.Mul(&num, &diffX)
			den.Mul(&den, &diffIJ)
		}
		var denInv field.Element
		denInv.Inverse(&den)
		var factor field.Element
		factor.Mul(&num, &denInv)
		term.Mul(&term, &factor)
		result.Add(&result, &term)
	}
	return result
}
