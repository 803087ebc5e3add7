package cyclefold

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/crypto/ecc/bw6761"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/transcript"
)

func TestTrackFoldStepBaseAndFollowing(t *testing.T) {
	c := qt.New(t)
	pp := pedersen.Setup(&bw6761.G1{}, 8)
	track := NewTrack(pp, 1)
	c.Assert(track.Step(), qt.Equals, uint64(0))

	op1 := ComputeAdd(big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4))
	c.Assert(track.FoldStep([]Op{op1}, field.One()), qt.IsNil)
	c.Assert(track.Step(), qt.Equals, uint64(1))
	c.Assert(track.CheckSatisfied(), qt.IsNil)

	op2 := ComputeAdd(big.NewInt(5), big.NewInt(6), big.NewInt(7), big.NewInt(8))
	c.Assert(track.FoldStep([]Op{op2}, field.FromInt64(7)), qt.IsNil)
	c.Assert(track.Step(), qt.Equals, uint64(2))
	c.Assert(track.CheckSatisfied(), qt.IsNil)
}

func TestTrackFoldStepRejectsWrongOpCount(t *testing.T) {
	c := qt.New(t)
	pp := pedersen.Setup(&bw6761.G1{}, 8)
	track := NewTrack(pp, 2)
	op1 := ComputeAdd(big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4))
	c.Assert(track.FoldStep([]Op{op1}, field.One()), qt.Equals, novaerrors.ErrShapeMismatch)
}

func TestTrackAbsorbIntoDoesNotPanic(t *testing.T) {
	c := qt.New(t)
	pp := pedersen.Setup(&bw6761.G1{}, 8)
	track := NewTrack(pp, 1)
	op1 := ComputeAdd(big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4))
	c.Assert(track.FoldStep([]Op{op1}, field.One()), qt.IsNil)

	tr := transcript.New("test/cyclefold")
	track.AbsorbInto(tr)
	ch := tr.GetChallenge()
	c.Assert(ch.IsZero(), qt.IsFalse)
}
