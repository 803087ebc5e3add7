package nova

import (
	"math/big"

	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/r1cs"
)

// CrossTerm computes T such that
// (A(z1+r·z2))∘(B(z1+r·z2)) − (u1+r·u2)·C(z1+r·z2)
// equals (Az1∘Bz1 − u1·Cz1) + r²·(Az2∘Bz2 − u2·Cz2) + r·T,
// i.e. T = (Az1)∘(Bz2) + (Az2)∘(Bz1) − u1·Cz2 − u2·Cz1 (the standard
// Nova cross-term; spec.md §4.4 step 2 names it without spelling out
// the closed form, which is reproduced here for clarity).
func CrossTerm(sys *r1cs.R1CS, z1 field.Vector, u1 field.Element, z2 field.Vector, u2 field.Element) (field.Vector, error) {
	az1, err := sys.A.MulVec(z1)
	if err != nil {
		return nil, err
	}
	bz1, err := sys.B.MulVec(z1)
	if err != nil {
		return nil, err
	}
	cz1, err := sys.C.MulVec(z1)
	if err != nil {
		return nil, err
	}
	az2, err := sys.A.MulVec(z2)
	if err != nil {
		return nil, err
	}
	bz2, err := sys.B.MulVec(z2)
	if err != nil {
		return nil, err
	}
	cz2, err := sys.C.MulVec(z2)
	if err != nil {
		return nil, err
	}

	m := len(az1)
	t := make(field.Vector, m)
	for i := 0; i < m; i++ {
		var a, b, c, d, sum field.Element
		a.Mul(&az1[i], &bz2[i])
		b.Mul(&az2[i], &bz1[i])
		c.Mul(&u1, &cz2[i])
		d.Mul(&u2, &cz1[i])
		sum.Add(&a, &b)
		sum.Sub(&sum, &c)
		sum.Sub(&sum, &d)
		t[i] = sum
	}
	return t, nil
}

// FoldInstance computes U' = U + r·u component-wise, given the
// already-committed cross-term cmT (spec.md §4.4 step 2): cmE' =
// cmE + r·cmT + r²·u·cmE_fresh is NOT used here — Nova folds a
// *running* instance U with a *fresh* non-relaxed instance u (whose
// own error commitment is the point at infinity), so the formula
// simplifies to cmE' = U.cmE + r·cmT.
func FoldInstance(zero *pedersen.Commitment, running *CommittedInstance, fresh *CommittedInstance, cmT *pedersen.Commitment, r field.Element) *CommittedInstance {
	cmE := addScaled(running.CmE, cmT, r)
	cmW := addScaled(running.CmW, fresh.CmW, r)

	var u field.Element
	u.Mul(&r, &fresh.U)
	u.Add(&u, &running.U)

	x := make(field.Vector, len(running.X))
	copy(x, running.X)
	for i, xi := range fresh.X {
		var scaled field.Element
		scaled.Mul(&r, &xi)
		if i < len(x) {
			x[i].Add(&x[i], &scaled)
		} else {
			x = append(x, scaled)
		}
	}

	return &CommittedInstance{CmE: cmE, CmW: cmW, U: u, X: x}
}

// FoldWitness folds the native witness opening data the same way
// FoldInstance folds the committed instance: W' = W + r·w, E' =
// E + r·T, with blinding factors folded identically (both zero
// outside hiding mode, per spec.md open question 3).
func FoldWitness(running *Witness, fresh *Witness, t field.Vector, r field.Element) *Witness {
	w := make(field.Vector, len(running.W))
	copy(w, running.W)
	for i, wi := range fresh.W {
		var scaled field.Element
		scaled.Mul(&r, &wi)
		if i < len(w) {
			w[i].Add(&w[i], &scaled)
		} else {
			w = append(w, scaled)
		}
	}

	e := make(field.Vector, len(running.E))
	copy(e, running.E)
	for i, ti := range t {
		var scaled field.Element
		scaled.Mul(&r, &ti)
		if i < len(e) {
			e[i].Add(&e[i], &scaled)
		} else {
			e = append(e, scaled)
		}
	}

	var rw, re, tmp field.Element
	tmp.Mul(&r, &fresh.RW)
	rw.Add(&running.RW, &tmp)
	tmp.Mul(&r, &fresh.RE)
	re.Add(&running.RE, &tmp)

	return &Witness{W: w, E: e, RW: rw, RE: re}
}

func addScaled(base, term *pedersen.Commitment, r field.Element) *pedersen.Commitment {
	scaledTerm := base.Point.New()
	scaledTerm.ScalarMult(term.Point, r.BigInt(new(big.Int)))
	out := base.Point.New()
	out.Add(base.Point, scaledTerm)
	return &pedersen.Commitment{Point: out}
}
