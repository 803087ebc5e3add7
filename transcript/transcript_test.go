package transcript_test

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/transcript"
)

func TestGetChallengeDeterministic(t *testing.T) {
	c := qt.New(t)
	t1 := transcript.New("domain-a")
	t1.Absorb(field.FromInt64(42))
	c1 := t1.GetChallenge()

	t2 := transcript.New("domain-a")
	t2.Absorb(field.FromInt64(42))
	c2 := t2.GetChallenge()

	c.Assert(c1.Equal(&c2), qt.IsTrue)
}

func TestDomainSeparation(t *testing.T) {
	c := qt.New(t)
	t1 := transcript.New("domain-a")
	t1.Absorb(field.FromInt64(42))
	c1 := t1.GetChallenge()

	t2 := transcript.New("domain-b")
	t2.Absorb(field.FromInt64(42))
	c2 := t2.GetChallenge()

	c.Assert(c1.Equal(&c2), qt.IsFalse)
}

func TestSuccessiveChallengesDiffer(t *testing.T) {
	c := qt.New(t)
	tr := transcript.New("domain-a")
	tr.Absorb(field.FromInt64(1))
	c1 := tr.GetChallenge()
	c2 := tr.GetChallenge()
	c.Assert(c1.Equal(&c2), qt.IsFalse)
}

func TestAbsorbVectorMatchesSequentialAbsorb(t *testing.T) {
	c := qt.New(t)
	v := field.Vector{field.FromInt64(1), field.FromInt64(2), field.FromInt64(3)}

	t1 := transcript.New("domain-vec")
	t1.AbsorbVector(v)
	c1 := t1.GetChallenge()

	t2 := transcript.New("domain-vec")
	for _, e := range v {
		t2.Absorb(e)
	}
	c2 := t2.GetChallenge()

	c.Assert(c1.Equal(&c2), qt.IsTrue)
}

func TestGetChallengeNBitsTruncates(t *testing.T) {
	c := qt.New(t)
	tr := transcript.New("domain-bits")
	tr.Absorb(field.FromInt64(7))
	out := tr.GetChallengeNBits(8)
	v := out.BigInt(new(big.Int))
	c.Assert(v.Cmp(big.NewInt(256)), qt.Equals, -1)
}

func TestAbsorbNonNativeDeterministic(t *testing.T) {
	c := qt.New(t)
	x := big.NewInt(123456789)
	t1 := transcript.New("domain-nn")
	t1.AbsorbNonNative(x, 4, 64)
	c1 := t1.GetChallenge()

	t2 := transcript.New("domain-nn")
	t2.AbsorbNonNative(x, 4, 64)
	c2 := t2.GetChallenge()

	c.Assert(c1.Equal(&c2), qt.IsTrue)
}
