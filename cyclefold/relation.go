package cyclefold

import (
	novaerrors "github.com/vocdoni/nova-go/errors"
)

// opWidth is the witness row one Op contributes: (x1,y1,x2,y2,x3,y3,lambda).
const opWidth = 7

// Op records one deferred EC check: P3 = P1 + P2 on C1, verified here
// via the standard (non-unified) short Weierstrass addition formulas
// over Fq, with lambda the chord slope. Doubling (P1 == P2) and the
// point at infinity are out of scope: the main track only ever asks
// CycleFold to add a running commitment to a freshly scaled one,
// which are distinct points for any honest fold (see DESIGN.md).
type Op struct {
	X1, Y1 Scalar
	X2, Y2 Scalar
	X3, Y3 Scalar
	Lambda Scalar
}

// row returns Op's 7 witness scalars in fixed order.
func (o Op) row() Vector {
	return Vector{o.X1, o.Y1, o.X2, o.Y2, o.X3, o.Y3, o.Lambda}
}

func opFromRow(r Vector) Op {
	return Op{X1: r[0], Y1: r[1], X2: r[2], Y2: r[3], X3: r[4], Y3: r[5], Lambda: r[6]}
}

// Relation is the CycleFold auxiliary relation: NOps independent
// point-addition checks, each contributing 3 R1CS-shape constraints
// (Az∘Bz = Cz) over a shared Fq witness z = (1, op_0, op_1, ...). It
// plays the role package r1cs's R1CS plays for the main track, sized
// to however many EC operations one IVC step needs deferred, and
// folds with the exact same relaxed-R1CS cross-term algorithm
// (nova/fold.go's CrossTerm) since each constraint is already in
// Az∘Bz−u·Cz=E form:
//
//	lambda·(x2−x1) − (y2−y1) = 0
//	lambda·lambda  − (x1+x2+x3) = 0
//	lambda·(x1−x3) − (y3+y1) = 0
type Relation struct {
	NOps int
}

// NCols is the z-vector width: the leading 1 plus NOps*opWidth witness entries.
func (r *Relation) NCols() int { return 1 + opWidth*r.NOps }

// NRows is the constraint count: 3 per operation.
func (r *Relation) NRows() int { return 3 * r.NOps }

// Az, Bz, Cz evaluate the relation's three linear maps against the
// full z vector (z[0] is the implicit leading 1; z[1:] holds NOps
// op rows back to back, matching row()'s layout).
func (r *Relation) Az(z Vector) Vector {
	out := newVector(r.NRows())
	for i := 0; i < r.NOps; i++ {
		op := opFromRow(z[1+i*opWidth : 1+(i+1)*opWidth])
		out[i*3] = op.Lambda
		out[i*3+1] = op.Lambda
		out[i*3+2] = op.Lambda
	}
	return out
}

func (r *Relation) Bz(z Vector) Vector {
	out := newVector(r.NRows())
	for i := 0; i < r.NOps; i++ {
		op := opFromRow(z[1+i*opWidth : 1+(i+1)*opWidth])
		out[i*3] = *new(Scalar).Sub(&op.X2, &op.X1)
		out[i*3+1] = op.Lambda
		out[i*3+2] = *new(Scalar).Sub(&op.X1, &op.X3)
	}
	return out
}

func (r *Relation) Cz(z Vector) Vector {
	out := newVector(r.NRows())
	for i := 0; i < r.NOps; i++ {
		op := opFromRow(z[1+i*opWidth : 1+(i+1)*opWidth])
		out[i*3] = *new(Scalar).Sub(&op.Y2, &op.Y1)
		var sumX Scalar
		sumX.Add(&op.X1, &op.X2)
		sumX.Add(&sumX, &op.X3)
		out[i*3+1] = sumX
		var sumY Scalar
		sumY.Add(&op.Y3, &op.Y1)
		out[i*3+2] = sumY
	}
	return out
}

// EvalRelation returns Az∘Bz − Cz, the non-relaxed (u=1) residual
// vector; every entry must be zero for a satisfying z.
func (r *Relation) EvalRelation(z Vector) Vector {
	az, bz, cz := r.Az(z), r.Bz(z), r.Cz(z)
	out := newVector(len(az))
	for i := range out {
		var prod Scalar
		prod.Mul(&az[i], &bz[i])
		out[i].Sub(&prod, &cz[i])
	}
	return out
}

// CheckSatisfied reports whether z's residuals are exactly zero.
func (r *Relation) CheckSatisfied(z Vector) error {
	for _, e := range r.EvalRelation(z) {
		if !e.IsZero() {
			return novaerrors.ErrNotSatisfied
		}
	}
	return nil
}

// CheckRelaxed reports whether z's residuals match the relaxed error
// vector e scaled by u, i.e. Az∘Bz − u·Cz == e — the CF track's
// analogue of r1cs.CheckSatisfied for a folded (u != 1) instance.
func (r *Relation) CheckRelaxed(z Vector, u Scalar, e Vector) error {
	az, bz, cz := r.Az(z), r.Bz(z), r.Cz(z)
	if len(az) != len(e) {
		return novaerrors.ErrShapeMismatch
	}
	for i := range az {
		var prod, uCz, got Scalar
		prod.Mul(&az[i], &bz[i])
		uCz.Mul(&u, &cz[i])
		got.Sub(&prod, &uCz)
		if !got.Equal(&e[i]) {
			return novaerrors.ErrNotSatisfied
		}
	}
	return nil
}

// Z assembles the full witness vector z = (1, w) the relation's
// Az/Bz/Cz expect, w holding NOps op rows back to back.
func Z(ops []Op) Vector {
	z := make(Vector, 0, 1+opWidth*len(ops))
	z = append(z, one())
	for _, op := range ops {
		z = append(z, op.row()...)
	}
	return z
}
