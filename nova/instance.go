// Package nova implements the Nova folding scheme's driver state
// machine (spec.md §4.4): an IVC prover that, at every step, folds a
// relaxed R1CS running instance with a fresh non-relaxed instance
// produced by solving the augmented circuit, and exposes the running
// instance/witness pair the onchain decider (package decider)
// eventually compresses into a single Groth16 proof.
package nova

import (
	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/field"
)

// CommittedInstance is a relaxed R1CS running instance: the
// committed error/witness terms plus the native scalar state (u, x).
// When cmE/cmW are the point at infinity they are represented as the
// affine identity convention (0,1) wherever they are hashed or
// absorbed into a transcript (spec.md §4.4 tie-break).
type CommittedInstance struct {
	CmE *pedersen.Commitment
	CmW *pedersen.Commitment
	U   field.Element
	X   field.Vector
}

// Witness is the native opening data behind a CommittedInstance: the
// witness vector W, the error vector E, and the blinding factors used
// when committing to each (both zero outside hiding mode).
type Witness struct {
	W  field.Vector
	E  field.Vector
	RW field.Element
	RE field.Element
}

// Dummy returns the base-case running instance/witness pair used at
// i=0: u=1, cmE=0, cmW=0, and all-zero W/E vectors sized to the
// circuit's witness/constraint counts.
func Dummy(pp *pedersen.Params, nWitness, nConstraints int) (*CommittedInstance, *Witness) {
	w := &Witness{
		W:  field.NewVector(nWitness),
		E:  field.NewVector(nConstraints),
		RW: field.Zero(),
		RE: field.Zero(),
	}
	cmW, _ := pedersen.Commit(pp, w.W, w.RW, false)
	cmE, _ := pedersen.Commit(pp, w.E, w.RE, false)
	inst := &CommittedInstance{
		CmE: cmE,
		CmW: cmW,
		U:   field.One(),
		X:   field.NewVector(0),
	}
	return inst, w
}
