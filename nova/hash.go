package nova

import (
	"math/big"

	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/transcript"
)

// nonNativeLimbs/nonNativeLimbBits decompose a BN254 base-field
// coordinate (Fq, ~254 bits) the same way the augmented circuit's
// emulated.Field represents it in-circuit, so the native transcript's
// AbsorbNonNative sequence and the circuit's limb-wise absorb line up
// bit-for-bit (spec.md §8).
const (
	nonNativeLimbs    = 4
	nonNativeLimbBits = 64
)

// identityCoord is the affine-identity convention spec.md §4.4
// requires when hashing a point-at-infinity commitment: (0, 1).
func identityCoord(p interface{ Point() (*big.Int, *big.Int) }) (*big.Int, *big.Int) {
	x, y := p.Point()
	if x.Sign() == 0 && y.Sign() == 0 {
		return big.NewInt(0), big.NewInt(1)
	}
	return x, y
}

// InstanceHash computes H(i, z0, zi, U), the public hash the
// augmented circuit enforces at every step (spec.md §4.5), by running
// the same transcript primitive used for Fiat-Shamir challenges
// (package transcript) over a fixed absorb sequence and squeezing a
// single challenge as H. Using transcript.Transcript here rather than
// a bespoke hash wrapper guarantees the native sequence matches the
// in-circuit recomputation (circuit.recomputeHash) field for field,
// since both are built from the same absorb/absorb_nonnative/squeeze
// primitive.
func InstanceHash(i uint64, z0, zi field.Vector, u *CommittedInstance) (*big.Int, error) {
	tr := transcript.New("nova-go/instance-hash")
	tr.Absorb(field.FromInt64(int64(i)))
	tr.AbsorbVector(z0)
	tr.AbsorbVector(zi)
	tr.Absorb(u.U)

	ex, ey := identityCoord(u.CmE.Point)
	wx, wy := identityCoord(u.CmW.Point)
	tr.AbsorbNonNative(ex, nonNativeLimbs, nonNativeLimbBits)
	tr.AbsorbNonNative(ey, nonNativeLimbs, nonNativeLimbBits)
	tr.AbsorbNonNative(wx, nonNativeLimbs, nonNativeLimbBits)
	tr.AbsorbNonNative(wy, nonNativeLimbs, nonNativeLimbBits)

	tr.AbsorbVector(u.X)

	h := tr.GetChallenge()
	return h.BigInt(new(big.Int)), nil
}
