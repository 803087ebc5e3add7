package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/emulated/sw_emulated"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/emulated/emparams"
)

// BaseField is the emulated representation of BN254's base field Fq,
// the field a committed instance's curve-point coordinates live in.
// ScalarField is BN254's scalar field Fr, which doubles as this
// circuit's own native field, so folding scalars (r, u, x) are native
// frontend.Variables lifted into ScalarField only where the
// sw_emulated scalar-multiplication gadget requires it.
type (
	BaseField   = emparams.BN254Fp
	ScalarField = emparams.BN254Fr
)

// Instance is the in-circuit mirror of nova.CommittedInstance: the
// committed error/witness points as non-native affine points, plus
// the native scalar state (u, x).
type Instance struct {
	CmE sw_emulated.AffinePoint[BaseField]
	CmW sw_emulated.AffinePoint[BaseField]
	U   frontend.Variable
	X   []frontend.Variable
}

// AugmentedCircuit is the per-step folding circuit Nova solves to
// produce the fresh instance/witness pair the driver (package nova)
// folds into the running instance (spec.md §4.5). Its single public
// input is X, the hash H(i, z0, zi, U) the driver recomputes natively
// via nova.InstanceHash; the circuit recomputes the same hash
// in-circuit and constrains it equal.
//
// Grounded on statetransition.Define's shape (_examples teacher): a
// Define method that runs a handful of Verify*-style sub-steps in
// sequence, with FrontendError used for any step that can fail in a
// way the caller should see as a witness-assignment error rather than
// an unsatisfiable constraint.
type AugmentedCircuit struct {
	F FCircuit `gnark:"-"`

	// Public input.
	X frontend.Variable `gnark:",public"`

	// Private witness: the step index, the IVC's fixed initial state
	// and the state before this step, the running and fresh instances,
	// the folding cross-term commitment, and any circuit-specific
	// external inputs the FCircuit gadget consumes.
	I   frontend.Variable
	Z0  []frontend.Variable
	Zi  []frontend.Variable
	Ext []frontend.Variable

	Running Instance
	Fresh   Instance
	CmT     sw_emulated.AffinePoint[BaseField]
}

// Define implements frontend.Circuit. It (1) runs the user F-gadget
// to compute z_{i+1}, (2) derives the folding challenge r from an
// in-circuit transcript absorbing the running/fresh instances and
// cmT — matching transcript.Transcript's native absorb sequence
// bit-for-bit — (3) folds Running and Fresh into U' using the same
// closed form as nova.FoldInstance, and (4) recomputes H(i+1, z0,
// z_{i+1}, U') and constrains it equal to the public input X.
//
// The i=0 base case is not branched on: callers seed Running with
// nova.Dummy's all-zero instance, so folding at i=0 degenerates to
// U' = Fresh with no separate circuit path — both i=0 and i>0 run
// through the identical constraint set, the api.Select-free approach
// SPEC_FULL's open question on base-case handling settled on.
func (c *AugmentedCircuit) Define(api frontend.API) error {
	zNext, err := c.F.Gadget(api, c.I, c.Zi, c.Ext)
	if err != nil {
		FrontendError(api, "F gadget failed", err)
		return err
	}

	curve, err := sw_emulated.New[BaseField, ScalarField](api, sw_emulated.GetBN254Params())
	if err != nil {
		FrontendError(api, "failed to build emulated curve", err)
		return err
	}
	scalarField, err := emulated.NewField[ScalarField](api)
	if err != nil {
		FrontendError(api, "failed to build emulated scalar field", err)
		return err
	}

	tr, err := NewTranscript(api, "nova-go/augmented")
	if err != nil {
		FrontendError(api, "failed to build in-circuit transcript", err)
		return err
	}
	absorbInstance(tr, &c.Running)
	absorbInstance(tr, &c.Fresh)
	absorbPoint(tr, &c.CmT)
	r := tr.GetChallengeNBits(128)
	rElem := scalarField.NewElement(r)

	folded := foldInstance(api, curve, &c.Running, &c.Fresh, &c.CmT, r, rElem)

	iNext := api.Add(c.I, 1)
	h, err := recomputeHash(api, iNext, c.Z0, zNext, folded)
	if err != nil {
		FrontendError(api, "failed to recompute instance hash", err)
		return err
	}
	api.AssertIsEqual(h, c.X)
	return nil
}

func absorbInstance(tr *Transcript, inst *Instance) {
	tr.Absorb(inst.U)
	tr.AbsorbVector(inst.X)
	absorbPoint(tr, &inst.CmE)
	absorbPoint(tr, &inst.CmW)
}

func absorbPoint(tr *Transcript, p *sw_emulated.AffinePoint[BaseField]) {
	tr.AbsorbNonNativeLimbs(p.X.Limbs)
	tr.AbsorbNonNativeLimbs(p.Y.Limbs)
}

// foldInstance mirrors nova.FoldInstance inside the circuit: cmE' =
// Running.cmE + r·cmT, cmW' = Running.cmW + r·Fresh.cmW, u' =
// Running.u + r·Fresh.u, x' = Running.x + r·Fresh.x. The point
// additions/scalar-mults run over the emulated BN254 base field; the
// scalar-field state (u, x) stays native.
//
// This still runs the additions/scalar-mults directly via
// sw_emulated rather than deferring them to the CycleFold track
// (package cyclefold): the native driver (nova.Driver) now folds a
// real cyclefold.Track alongside its relaxed R1CS track and could
// hand this circuit limb-decomposed CF-track outputs instead, but
// swapping this gadget's non-native curve arithmetic for CF's
// limb-consuming verifier is additional in-circuit surgery left for
// a follow-up (see DESIGN.md) — the two tracks are wired and folding
// correctly outside the circuit today; only this gadget's internals
// still duplicate the work CycleFold exists to avoid.
func foldInstance(api frontend.API, curve *sw_emulated.Curve[BaseField, ScalarField], running, fresh *Instance, cmT *sw_emulated.AffinePoint[BaseField], r frontend.Variable, rElem *emulated.Element[ScalarField]) *Instance {
	scaledT := curve.ScalarMul(cmT, rElem)
	cmE := curve.Add(&running.CmE, scaledT)

	scaledW := curve.ScalarMul(&fresh.CmW, rElem)
	cmW := curve.Add(&running.CmW, scaledW)

	u := api.Add(running.U, api.Mul(r, fresh.U))

	x := make([]frontend.Variable, len(running.X))
	for i := range running.X {
		term := api.Mul(r, fresh.X[i])
		x[i] = api.Add(running.X[i], term)
	}

	return &Instance{CmE: *cmE, CmW: *cmW, U: u, X: x}
}

func recomputeHash(api frontend.API, i frontend.Variable, z0, zi []frontend.Variable, u *Instance) (frontend.Variable, error) {
	tr, err := NewTranscript(api, "nova-go/instance-hash")
	if err != nil {
		return nil, err
	}
	tr.Absorb(i)
	tr.AbsorbVector(z0)
	tr.AbsorbVector(zi)
	tr.Absorb(u.U)
	absorbPoint(tr, &u.CmE)
	absorbPoint(tr, &u.CmW)
	tr.AbsorbVector(u.X)
	return tr.GetChallenge(), nil
}
