package nova

import (
	"math/big"

	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/cyclefold"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/r1cs"
	"github.com/vocdoni/nova-go/transcript"
)

// StepWitness builds the full R1CS witness vector for one IVC step,
// given the state before and after the step and any external inputs.
// Implementations lay the vector out the same way the augmented
// circuit (package circuit) lays out its own private witness, since
// the two must describe the same R1CS (spec.md §6, "constraint
// synthesizer produces matrices A/B/C on demand").
type StepWitness func(i uint64, z0, zi, zNext, ext field.Vector) (field.Vector, error)

// Driver is the Nova folding state machine of spec.md §4.4: it owns
// the exclusive mutable (i, z_0, z_i, (U_i, W_i)) state and advances
// it one step at a time via ProveStep. Grounded on the teacher's
// single-owner mutable-state pattern (state/state.go: a struct that
// owns its fields and is mutated in place by step methods, never
// passed around by value).
type Driver struct {
	pp      *pedersen.Params
	sys     *r1cs.R1CS
	buildW  StepWitness
	maxStep uint64

	i   uint64
	z0  field.Vector
	zi  field.Vector
	run *CommittedInstance
	w   *Witness

	// cf is the CycleFold auxiliary track (spec.md §4.6), folding the
	// two EC additions FoldInstance performs (cmE' = cmE + r·cmT,
	// cmW' = cmW + r·cmW_fresh) on its own track instead of leaving
	// them to non-native in-circuit arithmetic. Nil disables it (the
	// dummy/identity F circuits in the nova tests don't need it).
	cf *cyclefold.Track

	// last captures the most recent non-base-case fold's native
	// inputs, so the onchain decider (package decider) can re-run the
	// identical fold inside circuit.DeciderCircuit (spec.md §4.7's
	// final fold to (U_final,W_final)) without Driver having to retain
	// every intermediate step.
	last *FoldRecord
}

// FoldRecord is the native input/output of one ProveStep fold: the
// running instance before folding, the fresh per-step instance, the
// cross-term commitment, and the folding challenge. The onchain
// decider consumes the last one to re-derive U_final in-circuit.
type FoldRecord struct {
	Running *CommittedInstance
	Fresh   *CommittedInstance
	CmT     *pedersen.Commitment
	R       field.Element
}

// LastFold returns the most recent non-base-case fold's record, or nil
// if ProveStep has only ever run the base case.
func (d *Driver) LastFold() *FoldRecord { return d.last }

// Init runs spec.md §6's init(PP+VP, F, z_0): it builds the i=0 dummy
// running instance/witness and seeds the driver with the IVC's fixed
// initial state z_0.
func Init(pp *pedersen.Params, sys *r1cs.R1CS, buildW StepWitness, z0 field.Vector, maxStep uint64) *Driver {
	run, w := Dummy(pp, sys.NCols()-sys.L-1, sys.NRows())
	return &Driver{
		pp:      pp,
		sys:     sys,
		buildW:  buildW,
		maxStep: maxStep,
		i:       0,
		z0:      z0,
		zi:      z0,
		run:     run,
		w:       w,
	}
}

// WithCycleFold attaches a CycleFold auxiliary track to the driver,
// sized for the 2 EC additions ("cmE' = cmE + r·cmT" and "cmW' = cmW +
// r·cmW_fresh") every post-base-case ProveStep performs. Must be
// called before the first non-base-case ProveStep.
func (d *Driver) WithCycleFold(cfPP *pedersen.Params) *Driver {
	d.cf = cyclefold.NewTrack(cfPP, 2)
	return d
}

// CycleFold returns the driver's CF track, or nil if WithCycleFold was
// never called.
func (d *Driver) CycleFold() *cyclefold.Track { return d.cf }

// State returns the driver's current folded state z_i.
func (d *Driver) State() field.Vector { return d.zi }

// Step returns the number of steps folded so far.
func (d *Driver) Step() uint64 { return d.i }

// ProveStep runs spec.md §4.4's prove_step algorithm once: it folds
// the fresh per-step instance into the running one and advances
// (i, z_i) in place. zNext is supplied by the caller's F.Native; ext
// are the step's external inputs.
func (d *Driver) ProveStep(zNext field.Vector, ext field.Vector) error {
	if d.maxStep != 0 && d.i >= d.maxStep {
		return novaerrors.ErrMaxStep
	}

	witnessVec, err := d.buildW(d.i, d.z0, d.zi, zNext, ext)
	if err != nil {
		return err
	}

	// Step 2: fresh (non-relaxed) instance/witness for this step.
	cmW, err := pedersen.Commit(d.pp, witnessVec, field.Zero(), false)
	if err != nil {
		return err
	}
	fresh := &CommittedInstance{
		CmE: zeroCommitment(d.pp),
		CmW: cmW,
		U:   field.One(),
		X:   field.NewVector(0),
	}
	freshW := &Witness{
		W:  witnessVec,
		E:  field.NewVector(d.sys.NRows()),
		RW: field.Zero(),
		RE: field.Zero(),
	}

	var folded *CommittedInstance
	var foldedW *Witness
	var cmT *pedersen.Commitment
	var r field.Element

	if d.i == 0 {
		// Step 2, i=0 branch: skip folding entirely.
		folded, foldedW, cmT, r = fresh, freshW, zeroCommitment(d.pp), field.Zero()
	} else {
		prevRun := d.run
		z1 := r1cs.Z(&r1cs.Instance{U: d.run.U, X: d.run.X}, &r1cs.Witness{W: d.w.W, E: d.w.E})
		z2 := r1cs.Z(&r1cs.Instance{U: fresh.U, X: fresh.X}, &r1cs.Witness{W: freshW.W, E: freshW.E})
		t, err := CrossTerm(d.sys, z1, d.run.U, z2, fresh.U)
		if err != nil {
			return err
		}
		cmT, err = pedersen.Commit(d.pp, t, field.Zero(), false)
		if err != nil {
			return err
		}

		tr := transcript.New("nova-go/prove-step")
		absorbCommittedInstance(tr, d.run)
		absorbCommittedInstance(tr, fresh)
		cmTx, _ := cmT.Point.Point()
		tr.Absorb(field.FromBigInt(cmTx))
		if d.cf != nil {
			d.cf.AbsorbInto(tr)
		}
		r = tr.GetChallengeNBits(128)

		folded = FoldInstance(zeroCommitment(d.pp), d.run, fresh, cmT, r)
		foldedW = FoldWitness(d.w, freshW, t, r)

		if d.cf != nil {
			if err := d.foldCycleFold(cmT, fresh, folded, r); err != nil {
				return err
			}
		}

		d.last = &FoldRecord{Running: prevRun, Fresh: fresh, CmT: cmT, R: r}
	}

	// Step 3: the next instance's public input is the new hash.
	h, err := InstanceHash(d.i+1, d.z0, zNext, folded)
	if err != nil {
		return err
	}
	folded.X = field.Vector{field.FromBigInt(h)}

	// Steps 4-5 (build/solve the augmented circuit, re-derive r
	// in-circuit, extract a witness) are performed by the caller via
	// the circuit package; ProveStep only maintains the native track
	// described by spec.md §4.4 steps 1-3 and 6.
	d.run = folded
	d.w = foldedW
	d.zi = zNext
	d.i++
	_ = cmT
	return nil
}

// CheckSatisfied verifies the driver's current running instance/witness
// still satisfies the relaxed R1CS relation — the cheap, non-succinct
// verifier alternative to the decider (spec.md §8's NotSatisfied case).
func (d *Driver) CheckSatisfied() error {
	inst := &r1cs.Instance{U: d.run.U, X: d.run.X}
	wit := &r1cs.Witness{W: d.w.W, E: d.w.E}
	return d.sys.CheckSatisfied(inst, wit)
}

// IVCProof is the wire-serializable snapshot spec.md §6's ivc_proof()
// returns: enough to resume a driver (from_ivc_proof) or hand to the
// decider.
type IVCProof struct {
	I  uint64
	Z0 field.Vector
	Zi field.Vector
	U  *CommittedInstance
	W  *Witness
}

// Proof returns the driver's current IVCProof snapshot.
func (d *Driver) Proof() *IVCProof {
	return &IVCProof{I: d.i, Z0: d.z0, Zi: d.zi, U: d.run, W: d.w}
}

// FromIVCProof resumes a driver from a previously serialized proof,
// spec.md §6's from_ivc_proof(proof, F.params, PP+VP).
func FromIVCProof(pp *pedersen.Params, sys *r1cs.R1CS, buildW StepWitness, maxStep uint64, proof *IVCProof) *Driver {
	return &Driver{
		pp: pp, sys: sys, buildW: buildW, maxStep: maxStep,
		i: proof.I, z0: proof.Z0, zi: proof.Zi, run: proof.U, w: proof.W,
	}
}

// Verify checks an IVCProof in isolation: the relaxed relation holds
// for (U, W) and the public hash recorded in U.X matches H(i, z0, zi,
// U) with U's own x field zeroed out the way it was when H was first
// computed (spec.md §8, "flipping one bit in u_i.x causes verify to
// reject with NotSatisfied"). Rejects i=0 with NotEnoughSteps per
// spec.md §8's IVC floor.
func Verify(sys *r1cs.R1CS, proof *IVCProof) error {
	if proof.I == 0 {
		return novaerrors.ErrNotEnoughSteps
	}
	inst := &r1cs.Instance{U: proof.U.U, X: proof.U.X}
	wit := &r1cs.Witness{W: proof.W.W, E: proof.W.E}
	if err := sys.CheckSatisfied(inst, wit); err != nil {
		return novaerrors.ErrIVCVerificationFail
	}
	if len(proof.U.X) == 0 {
		return novaerrors.ErrMissingValue
	}
	want, err := InstanceHash(proof.I, proof.Z0, proof.Zi, &CommittedInstance{
		CmE: proof.U.CmE, CmW: proof.U.CmW, U: proof.U.U, X: field.NewVector(0),
	})
	if err != nil {
		return err
	}
	got := proof.U.X[0].BigInt(new(big.Int))
	if got.Cmp(want) != 0 {
		return novaerrors.ErrIVCVerificationFail
	}
	return nil
}

func absorbCommittedInstance(tr *transcript.Transcript, u *CommittedInstance) {
	tr.Absorb(u.U)
	tr.AbsorbVector(u.X)
	ex, ey := identityCoord(u.CmE.Point)
	wx, wy := identityCoord(u.CmW.Point)
	tr.AbsorbNonNative(ex, nonNativeLimbs, nonNativeLimbBits)
	tr.AbsorbNonNative(ey, nonNativeLimbs, nonNativeLimbBits)
	tr.AbsorbNonNative(wx, nonNativeLimbs, nonNativeLimbBits)
	tr.AbsorbNonNative(wy, nonNativeLimbs, nonNativeLimbBits)
}

// foldCycleFold records the two EC additions FoldInstance just
// performed natively as CycleFold ops (r·cmT added to the running
// cmE, r·fresh.cmW added to the running cmW) and folds them into the
// CF track with the same challenge r the main track used.
func (d *Driver) foldCycleFold(cmT *pedersen.Commitment, fresh, folded *CommittedInstance, r field.Element) error {
	rBig := r.BigInt(new(big.Int))

	scaledT := cmT.Point.New()
	scaledT.ScalarMult(cmT.Point, rBig)
	ex1, ey1 := d.run.CmE.Point.Point()
	ex2, ey2 := scaledT.Point()
	opE := cyclefold.ComputeAdd(ex1, ey1, ex2, ey2)

	scaledW := fresh.CmW.Point.New()
	scaledW.ScalarMult(fresh.CmW.Point, rBig)
	wx1, wy1 := d.run.CmW.Point.Point()
	wx2, wy2 := scaledW.Point()
	opW := cyclefold.ComputeAdd(wx1, wy1, wx2, wy2)

	return d.cf.FoldStep([]cyclefold.Op{opE, opW}, r)
}

func zeroCommitment(pp *pedersen.Params) *pedersen.Commitment {
	cm, _ := pedersen.Commit(pp, field.NewVector(0), field.Zero(), false)
	return cm
}
