package hypernova

import (
	"testing"

	qt "github.com/frankban/quicktest"

	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/sparse"
	"github.com/vocdoni/nova-go/transcript"
)

// twoRowSquareCCS duplicates the x*x=w constraint over two rows so
// the sum-check round loop actually runs (numVars(2)=1), unlike the
// single-row case which has no free Boolean variable at all.
func twoRowSquareCCS() (s [][]int, c []field.Element, m []*sparse.Matrix) {
	a := sparse.New(2, 3)
	a.Set(0, 1, field.One())
	a.Set(1, 1, field.One())
	b := sparse.New(2, 3)
	b.Set(0, 1, field.One())
	b.Set(1, 1, field.One())
	cm := sparse.New(2, 3)
	cm.Set(0, 2, field.One())
	cm.Set(1, 2, field.One())
	return [][]int{{0, 1}, {2}}, []field.Element{field.One(), field.FromInt64(-1)}, []*sparse.Matrix{a, b, cm}
}

func TestSumCheckProveVerifyRoundTrip(t *testing.T) {
	c := qt.New(t)
	s, coeffs, mats := twoRowSquareCCS()
	z := field.Vector{field.One(), field.FromInt64(3), field.FromInt64(9)}

	mz := make([]field.Vector, len(mats))
	for k, mk := range mats {
		v, err := mk.MulVec(z)
		c.Assert(err, qt.IsNil)
		mz[k] = padPow2(v)
	}
	beta := field.Vector{field.One()}
	eqTable := buildEqTable(beta)

	trProve := transcript.New("test/sumcheck")
	proof, rProve, err := Prove(s, coeffs, eqTable, mz, field.Zero(), trProve)
	c.Assert(err, qt.IsNil)
	c.Assert(len(proof.RoundEvals), qt.Equals, 1)

	trVerify := transcript.New("test/sumcheck")
	rVerify, _, err := Verify(field.Zero(), proof, trVerify)
	c.Assert(err, qt.IsNil)
	c.Assert(len(rVerify), qt.Equals, 1)
	c.Assert(rVerify[0].Equal(&rProve[0]), qt.IsTrue)
}

func TestSumCheckVerifyRejectsTamperedRound(t *testing.T) {
	c := qt.New(t)
	s, coeffs, mats := twoRowSquareCCS()
	z := field.Vector{field.One(), field.FromInt64(3), field.FromInt64(9)}

	mz := make([]field.Vector, len(mats))
	for k, mk := range mats {
		v, err := mk.MulVec(z)
		c.Assert(err, qt.IsNil)
		mz[k] = padPow2(v)
	}
	beta := field.Vector{field.One()}
	eqTable := buildEqTable(beta)

	trProve := transcript.New("test/sumcheck")
	proof, _, err := Prove(s, coeffs, eqTable, mz, field.Zero(), trProve)
	c.Assert(err, qt.IsNil)

	one := field.One()
	proof.RoundEvals[0][0].Add(&proof.RoundEvals[0][0], &one)

	trVerify := transcript.New("test/sumcheck")
	_, _, err = Verify(field.Zero(), proof, trVerify)
	c.Assert(err, qt.Equals, novaerrors.ErrSumCheckVerifyFail)
}
