package cyclefold

import (
	"math/big"

	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/transcript"
)

// Track is the CycleFold auxiliary folding track: a second, parallel
// Nova-style driver that folds Op batches (the EC point additions of
// one main-track fold) instead of relaxed R1CS instances. The main
// track's Driver (package nova) owns one Track and feeds it the ops
// each ProveStep produces (spec.md §4.6). The augmented circuit does
// not read this track: it still performs the same scalar
// multiplications and additions with sw_emulated.
type Track struct {
	pp  *pedersen.Params
	rel *Relation

	i   uint64
	run *CommittedInstance
	w   *Witness
}

// NewTrack builds a CF track sized for nOps operations per step,
// seeded with the i=0 dummy running instance.
func NewTrack(pp *pedersen.Params, nOps int) *Track {
	rel := &Relation{NOps: nOps}
	run, w := Dummy(pp, rel.NCols()-1, rel.NRows())
	return &Track{pp: pp, rel: rel, i: 0, run: run, w: w}
}

// State returns the track's current running instance.
func (t *Track) State() *CommittedInstance { return t.run }

// Step returns the number of CF folds performed so far.
func (t *Track) Step() uint64 { return t.i }

// FoldStep folds one batch of ops into the running CF instance. r is
// the shared transcript's folding challenge for this main-track step,
// reduced into Fq — the same challenge both tracks fold by, per
// spec.md §4.6's "share their randomness source" invariant.
func (t *Track) FoldStep(ops []Op, r field.Element) error {
	if len(ops) != t.rel.NOps {
		return novaerrors.ErrShapeMismatch
	}
	w := Z(ops)[1:]
	cf := fromBigInt(r.BigInt(new(big.Int)))

	cmW, err := pedersen.CommitNative(t.pp, w.toBigInts(), nil, false)
	if err != nil {
		return err
	}
	fresh := &CommittedInstance{CmE: zeroCommitment(t.pp), CmW: cmW, U: one(), X: newVector(0)}
	freshW := &Witness{W: w, E: newVector(t.rel.NRows()), RW: zero(), RE: zero()}

	if t.i == 0 {
		t.run, t.w = fresh, freshW
		t.i++
		return nil
	}

	zRunning := prependOne(t.w.W)
	zFresh := prependOne(freshW.W)

	tVec := CrossTerm(t.rel, zRunning, t.run.U, zFresh, fresh.U)
	cmT, err := pedersen.CommitNative(t.pp, tVec.toBigInts(), nil, false)
	if err != nil {
		return err
	}

	t.run = FoldInstance(t.run, fresh, cmT, cf)
	t.w = FoldWitness(t.w, freshW, tVec, cf)
	t.i++
	return nil
}

// CheckSatisfied verifies the track's current running instance/
// witness still satisfies the relaxed relation.
func (t *Track) CheckSatisfied() error {
	z := prependOne(t.w.W)
	return t.rel.CheckRelaxed(z, t.run.U, t.w.E)
}

// AbsorbInto mixes the track's running instance into the shared
// transcript so the main track's challenges depend on CF progress
// too — the bridging half of spec.md §4.6's shared-randomness
// invariant. Fq scalars are absorbed via their big.Int representative
// the same way nova.Driver absorbs non-native curve coordinates.
func (t *Track) AbsorbInto(tr *transcript.Transcript) {
	tr.Absorb(field.FromBigInt(t.run.U.BigInt(new(big.Int))))
	for _, x := range t.run.X {
		tr.Absorb(field.FromBigInt(x.BigInt(new(big.Int))))
	}
	ex, ey := t.run.CmE.Point.Point()
	wx, wy := t.run.CmW.Point.Point()
	tr.Absorb(field.FromBigInt(ex))
	tr.Absorb(field.FromBigInt(ey))
	tr.Absorb(field.FromBigInt(wx))
	tr.Absorb(field.FromBigInt(wy))
}

func prependOne(w Vector) Vector {
	z := make(Vector, 0, 1+len(w))
	z = append(z, one())
	z = append(z, w...)
	return z
}
