package hypernova

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/ccs"
	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/crypto/ecc/bn254"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/transcript"
)

func twoRowSquareCCSFull() *ccs.CCS {
	s, c, m := twoRowSquareCCS()
	return &ccs.CCS{M: m, S: s, C: c, L: 1}
}

func TestNIMFSFoldAndVerifyRoundTrip(t *testing.T) {
	c := qt.New(t)
	sys := twoRowSquareCCSFull()
	pp := pedersen.Setup(&bn254.G1{}, 4)

	running, runningW := Dummy(pp, 1, sys)

	w := field.Vector{field.FromInt64(9)}
	cmW, err := pedersen.Commit(pp, w, field.Zero(), false)
	c.Assert(err, qt.IsNil)
	fresh := &CCCS{C: cmW, X: field.Vector{field.FromInt64(3)}}
	freshW := &Witness{W: w}

	folded, foldedW, proof, err := Fold(sys, pp, running, runningW, fresh, freshW)
	c.Assert(err, qt.IsNil)
	c.Assert(foldedW.W, qt.Not(qt.IsNil))

	// Replay the same transcript sequence a verifier would to
	// independently re-derive rho (Fold draws it right after the
	// sum-check rounds).
	tr := transcript.New("nova-go/nimfs")
	absorbLCCCS(tr, running)
	absorbCCCS(tr, fresh)
	s := numVars(sys.NRows())
	beta := make(field.Vector, s)
	for i := range beta {
		beta[i] = tr.GetChallenge()
	}
	_, _, err = Verify(field.Zero(), proof, tr)
	c.Assert(err, qt.IsNil)
	rho := tr.GetChallenge()

	c.Assert(VerifyFold(sys, running, fresh, folded, rho, proof), qt.IsNil)
}

func TestNIMFSVerifyFoldRejectsTamperedV(t *testing.T) {
	c := qt.New(t)
	sys := twoRowSquareCCSFull()
	pp := pedersen.Setup(&bn254.G1{}, 4)

	running, runningW := Dummy(pp, 1, sys)

	w := field.Vector{field.FromInt64(9)}
	cmW, err := pedersen.Commit(pp, w, field.Zero(), false)
	c.Assert(err, qt.IsNil)
	fresh := &CCCS{C: cmW, X: field.Vector{field.FromInt64(3)}}
	freshW := &Witness{W: w}

	folded, _, proof, err := Fold(sys, pp, running, runningW, fresh, freshW)
	c.Assert(err, qt.IsNil)

	one := field.One()
	folded.V[0].Add(&folded.V[0], &one)

	tr := transcript.New("nova-go/nimfs")
	absorbLCCCS(tr, running)
	absorbCCCS(tr, fresh)
	s := numVars(sys.NRows())
	beta := make(field.Vector, s)
	for i := range beta {
		beta[i] = tr.GetChallenge()
	}
	_, _, err = Verify(field.Zero(), proof, tr)
	c.Assert(err, qt.IsNil)
	rho := tr.GetChallenge()

	err = VerifyFold(sys, running, fresh, folded, rho, proof)
	c.Assert(err, qt.Not(qt.IsNil))
}
