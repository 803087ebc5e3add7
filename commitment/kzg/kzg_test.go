package kzg_test

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/commitment/kzg"
	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
)

func testSRS(t *testing.T, maxDegree uint64) *kzg.SRS {
	t.Helper()
	srs, err := kzg.Setup(big.NewInt(987654321), maxDegree)
	if err != nil {
		t.Fatalf("kzg.Setup: %v", err)
	}
	return srs
}

func TestCommitOpenVerifyRoundTrip(t *testing.T) {
	c := qt.New(t)
	srs := testSRS(t, 8)
	coeffs := field.Vector{field.FromInt64(1), field.FromInt64(2), field.FromInt64(3)}
	cm, err := kzg.Commit(srs, coeffs)
	c.Assert(err, qt.IsNil)

	z := field.FromInt64(5)
	proof, err := kzg.Prove(srs, coeffs, z, false)
	c.Assert(err, qt.IsNil)
	// p(5) = 1 + 2*5 + 3*25 = 86
	want := field.FromInt64(86)
	c.Assert(proof.ClaimedValue.Equal(&want), qt.IsTrue)

	c.Assert(kzg.Verify(srs, cm, proof, z), qt.IsNil)
}

func TestVerifyRejectsWrongPoint(t *testing.T) {
	c := qt.New(t)
	srs := testSRS(t, 8)
	coeffs := field.Vector{field.FromInt64(1), field.FromInt64(2), field.FromInt64(3)}
	cm, err := kzg.Commit(srs, coeffs)
	c.Assert(err, qt.IsNil)

	proof, err := kzg.Prove(srs, coeffs, field.FromInt64(5), false)
	c.Assert(err, qt.IsNil)

	err = kzg.Verify(srs, cm, proof, field.FromInt64(6))
	c.Assert(err, qt.Equals, novaerrors.ErrCommitmentVerificationFail)
}

func TestCommitPolynomialTooLarge(t *testing.T) {
	c := qt.New(t)
	srs := testSRS(t, 2)
	coeffs := make(field.Vector, 16)
	for i := range coeffs {
		coeffs[i] = field.FromInt64(int64(i + 1))
	}
	_, err := kzg.Commit(srs, coeffs)
	c.Assert(err, qt.Equals, novaerrors.ErrPolynomialTooLarge)
}

func TestProveHidingNotSupported(t *testing.T) {
	c := qt.New(t)
	srs := testSRS(t, 8)
	coeffs := field.Vector{field.FromInt64(1)}
	_, err := kzg.Prove(srs, coeffs, field.FromInt64(1), true)
	c.Assert(err, qt.Equals, novaerrors.ErrHidingNotSupported)
}

func TestCommitTrimsTrailingZeros(t *testing.T) {
	c := qt.New(t)
	srs := testSRS(t, 8)
	withZeros := field.Vector{field.FromInt64(1), field.FromInt64(2), field.Zero(), field.Zero()}
	trimmed := field.Vector{field.FromInt64(1), field.FromInt64(2)}

	cm1, err := kzg.Commit(srs, withZeros)
	c.Assert(err, qt.IsNil)
	cm2, err := kzg.Commit(srs, trimmed)
	c.Assert(err, qt.IsNil)

	x1, y1 := cm1.Point()
	x2, y2 := cm2.Point()
	c.Assert(x1.Cmp(x2), qt.Equals, 0)
	c.Assert(y1.Cmp(y2), qt.Equals, 0)
}

func TestQuotientPointMatchesOpening(t *testing.T) {
	c := qt.New(t)
	srs := testSRS(t, 8)
	coeffs := field.Vector{field.FromInt64(4), field.FromInt64(1)}
	proof, err := kzg.Prove(srs, coeffs, field.FromInt64(2), false)
	c.Assert(err, qt.IsNil)
	x, y := proof.QuotientPoint()
	c.Assert(x, qt.Not(qt.IsNil))
	c.Assert(y, qt.Not(qt.IsNil))
}
