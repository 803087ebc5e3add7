package cyclefold

import (
	"math/big"

	"github.com/vocdoni/nova-go/commitment/pedersen"
)

// CrossTerm computes T = Az1∘Bz2 + Az2∘Bz1 − u1·Cz2 − u2·Cz1, the
// exact cross-term formula nova/fold.go's CrossTerm uses for the main
// track's relaxed R1CS, specialized to Relation's fixed Az/Bz/Cz.
func CrossTerm(rel *Relation, z1 Vector, u1 Scalar, z2 Vector, u2 Scalar) Vector {
	az1, bz1, cz1 := rel.Az(z1), rel.Bz(z1), rel.Cz(z1)
	az2, bz2, cz2 := rel.Az(z2), rel.Bz(z2), rel.Cz(z2)

	m := len(az1)
	t := newVector(m)
	for i := 0; i < m; i++ {
		var a, b, c, d, sum Scalar
		a.Mul(&az1[i], &bz2[i])
		b.Mul(&az2[i], &bz1[i])
		c.Mul(&u1, &cz2[i])
		d.Mul(&u2, &cz1[i])
		sum.Add(&a, &b)
		sum.Sub(&sum, &c)
		sum.Sub(&sum, &d)
		t[i] = sum
	}
	return t
}

// FoldInstance computes U' = U + r·u component-wise, mirroring
// nova.FoldInstance: running is a relaxed instance, fresh a
// non-relaxed one (cmE implicitly zero), so cmE' = running.CmE + r·cmT.
func FoldInstance(running *CommittedInstance, fresh *CommittedInstance, cmT *pedersen.Commitment, r Scalar) *CommittedInstance {
	cmE := addScaled(running.CmE, cmT, r)
	cmW := addScaled(running.CmW, fresh.CmW, r)

	var u Scalar
	u.Mul(&r, &fresh.U)
	u.Add(&u, &running.U)

	x := running.X.clone()
	for i, xi := range fresh.X {
		var scaled Scalar
		scaled.Mul(&r, &xi)
		if i < len(x) {
			x[i].Add(&x[i], &scaled)
		} else {
			x = append(x, scaled)
		}
	}

	return &CommittedInstance{CmE: cmE, CmW: cmW, U: u, X: x}
}

// FoldWitness folds the native opening data the same way FoldInstance
// folds the committed instance: W' = W + r·w, E' = E + r·T.
func FoldWitness(running *Witness, fresh *Witness, t Vector, r Scalar) *Witness {
	w := running.W.clone()
	for i, wi := range fresh.W {
		var scaled Scalar
		scaled.Mul(&r, &wi)
		if i < len(w) {
			w[i].Add(&w[i], &scaled)
		} else {
			w = append(w, scaled)
		}
	}

	e := running.E.clone()
	for i, ti := range t {
		var scaled Scalar
		scaled.Mul(&r, &ti)
		if i < len(e) {
			e[i].Add(&e[i], &scaled)
		} else {
			e = append(e, scaled)
		}
	}

	var rw, re, tmp Scalar
	tmp.Mul(&r, &fresh.RW)
	rw.Add(&running.RW, &tmp)
	tmp.Mul(&r, &fresh.RE)
	re.Add(&running.RE, &tmp)

	return &Witness{W: w, E: e, RW: rw, RE: re}
}

func addScaled(base, term *pedersen.Commitment, r Scalar) *pedersen.Commitment {
	scaledTerm := base.Point.New()
	scaledTerm.ScalarMult(term.Point, r.BigInt(new(big.Int)))
	out := base.Point.New()
	out.Add(base.Point, scaledTerm)
	return &pedersen.Commitment{Point: out}
}
