// Package transcript implements the Fiat-Shamir duplex sponge shared
// by every folding/commitment prover and verifier (spec.md §4.3): a
// sequence of absorb/absorb_nonnative/get_challenge calls over the
// same underlying hash state, built on gnark-crypto's fiat-shamir
// transcript the same way the teacher derives EVM-facing challenges
// in its blob/KZG code, but MiMC_BN254-hashed so the sequence can be
// mirrored bit-for-bit by the in-circuit sponge (circuit package)
// built from gnark's std/hash/mimc gadget — the literal in-circuit
// counterpart of this hash, rather than a hand-rolled reimplementation.
package transcript

import (
	"math/big"

	"github.com/consensys/gnark-crypto/hash"

	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
	"github.com/vocdoni/nova-go/field"
)

// challengeLabel is the single named challenge this duplex-style
// transcript exposes; spec.md's get_challenge/get_challenge_nbits
// both draw from the same running state, re-binding to this label
// after every squeeze so the next absorb/challenge pair starts fresh.
const challengeLabel = "nova-go/challenge"

// Transcript is a MiMC_BN254-backed Fiat-Shamir duplex sponge over the
// BN254 scalar field; it does not use Poseidon.
type Transcript struct {
	inner *fiatshamir.Transcript
}

// New returns a transcript seeded with a domain-separation label,
// preventing cross-protocol challenge reuse between, e.g., the main
// Nova track and the CycleFold track.
func New(domain string) *Transcript {
	t := fiatshamir.NewTranscript(hash.MIMC_BN254.New(), challengeLabel)
	_ = t.Bind(challengeLabel, []byte(domain))
	return &Transcript{inner: t}
}

// Absorb mixes a native field element into the sponge state.
func (t *Transcript) Absorb(v field.Element) {
	b := v.Bytes()
	_ = t.inner.Bind(challengeLabel, b[:])
}

// AbsorbVector absorbs a vector of field elements in order.
func (t *Transcript) AbsorbVector(v field.Vector) {
	for _, e := range v {
		t.Absorb(e)
	}
}

// AbsorbNonNative mixes a non-native field element (typically a
// CycleFold curve coordinate living in C1's base field) into the
// sponge by limb-decomposing it the same way the in-circuit sponge
// does via gnark's std/math/emulated, keeping native and in-circuit
// absorb sequences bit-identical (spec.md §8).
func (t *Transcript) AbsorbNonNative(v *big.Int, nbLimbs int, limbBits uint) {
	limbs := decompose(v, nbLimbs, limbBits)
	for _, l := range limbs {
		t.Absorb(field.FromBigInt(l))
	}
}

// GetChallenge squeezes a full-width field element challenge and
// re-binds it into the sponge so a subsequent absorb/challenge pair
// does not alias this one.
func (t *Transcript) GetChallenge() field.Element {
	out, err := t.inner.ComputeChallenge(challengeLabel)
	if err != nil {
		panic("transcript: " + err.Error()) // unreachable: ComputeChallenge only errors on a misconfigured label set
	}
	var e field.Element
	e.SetBytes(out)
	_ = t.inner.Bind(challengeLabel, out)
	return e
}

// GetChallengeNBits squeezes a challenge and truncates it to nBits,
// satisfying the 128-bit soundness floor spec.md requires callers to
// respect when choosing nBits.
func (t *Transcript) GetChallengeNBits(nBits uint) field.Element {
	c := t.GetChallenge()
	v := c.BigInt(new(big.Int))
	mask := new(big.Int).Sub(new(big.Int).Lsh(one, nBits), one)
	v.And(v, mask)
	var out field.Element
	out.SetBigInt(v)
	return out
}

var one = big.NewInt(1)

// decompose splits v into nbLimbs big-endian limbs of nbBits each.
func decompose(v *big.Int, nbLimbs int, nbBits uint) []*big.Int {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), nbBits), big.NewInt(1))
	limbs := make([]*big.Int, nbLimbs)
	rem := new(big.Int).Set(v)
	for i := nbLimbs - 1; i >= 0; i-- {
		limb := new(big.Int).And(rem, mask)
		limbs[i] = limb
		rem.Rsh(rem, nbBits)
	}
	return limbs
}
