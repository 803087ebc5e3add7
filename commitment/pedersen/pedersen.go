// Package pedersen implements the Pedersen vector commitment scheme
// used for the running instance's cmE/cmW commitments (spec.md §4.2):
// setup(rng, n) returns n+1 generators, commit(v, r) = ∑ v_i·g_i +
// r·h, and Prove/Verify implement a dot-product opening via
// Fiat-Shamir. Curve arithmetic is grounded on the teacher's BN254 G1
// MSM wrapper (crypto/ecc/bn254), generalized to the ecc.Point
// interface so the same code also folds CycleFold's BW6-761 track.
package pedersen

import (
	"math/big"

	"github.com/vocdoni/nova-go/crypto/ecc"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/transcript"
	"github.com/vocdoni/nova-go/util"
)

// Params holds the generators produced by Setup: n vector generators
// plus the single blinding generator h.
type Params struct {
	G []ecc.Point
	H ecc.Point
}

// Setup derives n+1 generators deterministically from the curve's
// base point scaled by distinct hash-derived scalars, so the same
// Params can be regenerated without storing them. zero is any point
// of the target curve, used only to reach New()/SetGenerator().
func Setup(zero ecc.Point, n int) *Params {
	g := make([]ecc.Point, n)
	base := zero.New()
	base.SetGenerator()
	for i := range n {
		g[i] = zero.New()
		g[i].ScalarMult(base, hashToScalar(zero, "pedersen/g", i))
	}
	h := zero.New()
	h.ScalarMult(base, hashToScalar(zero, "pedersen/h", 0))
	return &Params{G: g, H: h}
}

func hashToScalar(zero ecc.Point, label string, index int) *big.Int {
	t := transcript.New(label)
	t.Absorb(field.FromInt64(int64(index)))
	c := t.GetChallenge()
	out := c.BigInt(new(big.Int))
	out.Mod(out, zero.Order())
	if out.Sign() == 0 {
		out.SetInt64(1)
	}
	return out
}

// Commitment is the curve point ∑ v_i·g_i + r·h.
type Commitment struct {
	Point ecc.Point
}

// Commit computes the Pedersen commitment of v with blinding r. In
// non-hiding mode r must be the field zero value; a non-zero r
// returns BlindingNotZero (spec.md §4.2).
func Commit(p *Params, v field.Vector, r field.Element, hiding bool) (*Commitment, error) {
	scalars := make([]*big.Int, len(v))
	for i, vi := range v {
		scalars[i] = vi.BigInt(new(big.Int))
	}
	var rb *big.Int
	if !r.IsZero() {
		rb = r.BigInt(new(big.Int))
	}
	return commitScalars(p, scalars, rb, hiding)
}

// CommitNative commits a vector of raw scalars without routing them
// through field.Element first. It exists for callers whose witness
// values are native to a different field than field.Element — the
// CycleFold track (package cyclefold) commits BW6-761-native
// coordinates this way, since reducing them mod the main BN254 scalar
// field first would silently change their value.
func CommitNative(p *Params, scalars []*big.Int, r *big.Int, hiding bool) (*Commitment, error) {
	return commitScalars(p, scalars, r, hiding)
}

func commitScalars(p *Params, scalars []*big.Int, r *big.Int, hiding bool) (*Commitment, error) {
	if len(scalars) > len(p.G) {
		return nil, novaerrors.ErrShapeMismatch
	}
	if !hiding && r != nil && r.Sign() != 0 {
		return nil, novaerrors.ErrBlindingNotZero
	}
	acc := p.H.New()
	acc.SetZero()
	for i, vi := range scalars {
		term := p.H.New()
		term.ScalarMult(p.G[i], vi)
		acc.Add(acc, term)
	}
	if r != nil && r.Sign() != 0 {
		rTerm := p.H.New()
		rTerm.ScalarMult(p.H, r)
		acc.Add(acc, rTerm)
	}
	return &Commitment{Point: acc}, nil
}

// Opening is a dot-product opening proof: given a public challenge
// vector (drawn from the transcript), it proves knowledge of v, r
// behind a commitment without revealing them.
type Opening struct {
	// A is the prover's first-move commitment to a random mask.
	A ecc.Point
	// Z is the response vector, Z = mask + e·v.
	Z field.Vector
	// ZR is the blinding response, ZR = maskR + e·r.
	ZR field.Element
}

// Prove produces a dot-product opening of commitment cm = Commit(p, v, r, hiding)
// for the challenge vector the caller derives from t after absorbing cm.
func Prove(p *Params, t *transcript.Transcript, v field.Vector, r field.Element) (*Opening, error) {
	if len(v) > len(p.G) {
		return nil, novaerrors.ErrShapeMismatch
	}
	mask := make(field.Vector, len(v))
	for i := range mask {
		mask[i] = field.FromBigInt(randScalar(p.H.Order()))
	}
	maskR := field.FromBigInt(randScalar(p.H.Order()))

	a := p.H.New()
	a.SetZero()
	for i := range mask {
		term := p.H.New()
		term.ScalarMult(p.G[i], mask[i].BigInt(new(big.Int)))
		a.Add(a, term)
	}
	rTerm := p.H.New()
	rTerm.ScalarMult(p.H, maskR.BigInt(new(big.Int)))
	a.Add(a, rTerm)

	t.Absorb(field.FromBigInt(xCoord(a)))
	e := t.GetChallenge()

	z := make(field.Vector, len(v))
	for i := range v {
		var prod field.Element
		prod.Mul(&e, &v[i])
		z[i].Add(&mask[i], &prod)
	}
	var zr, prod field.Element
	prod.Mul(&e, &r)
	zr.Add(&maskR, &prod)

	return &Opening{A: a, Z: z, ZR: zr}, nil
}

// Verify checks a dot-product opening against commitment cm, drawing
// the same challenge e from t that Prove did (t must be replayed from
// the same point in the transcript by the caller).
func Verify(p *Params, t *transcript.Transcript, cm *Commitment, op *Opening) error {
	if len(op.Z) > len(p.G) {
		return novaerrors.ErrShapeMismatch
	}
	t.Absorb(field.FromBigInt(xCoord(op.A)))
	e := t.GetChallenge()

	lhs := p.H.New()
	lhs.SetZero()
	for i := range op.Z {
		term := p.H.New()
		term.ScalarMult(p.G[i], op.Z[i].BigInt(new(big.Int)))
		lhs.Add(lhs, term)
	}
	rTerm := p.H.New()
	rTerm.ScalarMult(p.H, op.ZR.BigInt(new(big.Int)))
	lhs.Add(lhs, rTerm)

	rhsECm := p.H.New()
	rhsECm.ScalarMult(cm.Point, e.BigInt(new(big.Int)))
	rhs := p.H.New()
	rhs.Add(op.A, rhsECm)

	if !lhs.Equal(rhs) {
		return novaerrors.ErrCommitmentVerificationFail
	}
	return nil
}

func xCoord(p ecc.Point) *big.Int {
	x, _ := p.Point()
	return x
}

func randScalar(order *big.Int) *big.Int {
	return util.RandomBigInt(big.NewInt(0), order)
}
