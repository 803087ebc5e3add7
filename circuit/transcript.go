package circuit

import (
	"crypto/sha256"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// Transcript is the in-circuit counterpart of transcript.Transcript: a
// MiMC_BN254 duplex sponge built from gnark's std/hash/mimc gadget, so
// the native and in-circuit absorb/challenge sequences are bit
// identical (spec.md §8) without reimplementing a hash function's
// round constants by hand inside the circuit.
type Transcript struct {
	api  frontend.API
	hFn  mimc.MiMC
	last frontend.Variable
}

// NewTranscript seeds a transcript with a domain-separation label,
// mirroring transcript.New. domain is a compile-time constant string,
// reduced to a field-sized constant the same way transcript.New binds
// its domain label's raw bytes.
func NewTranscript(api frontend.API, domain string) (*Transcript, error) {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return nil, err
	}
	t := &Transcript{api: api, hFn: h}
	t.Absorb(domainConstant(domain))
	return t, nil
}

func domainConstant(domain string) frontend.Variable {
	sum := sha256.Sum256([]byte(domain))
	return new(big.Int).SetBytes(sum[:])
}

// Absorb mixes a variable into the sponge state.
func (t *Transcript) Absorb(v frontend.Variable) {
	t.hFn.Write(v)
}

// AbsorbVector absorbs a slice of variables in order.
func (t *Transcript) AbsorbVector(v []frontend.Variable) {
	for _, e := range v {
		t.Absorb(e)
	}
}

// AbsorbNonNativeLimbs absorbs the limbs of a non-native element,
// already decomposed by the caller via gnark/std/math/emulated,
// mirroring transcript.AbsorbNonNative's limb order.
func (t *Transcript) AbsorbNonNativeLimbs(limbs []frontend.Variable) {
	t.AbsorbVector(limbs)
}

// GetChallenge squeezes a challenge and re-binds it into the sponge,
// mirroring transcript.Transcript.GetChallenge.
func (t *Transcript) GetChallenge() frontend.Variable {
	c := t.hFn.Sum()
	t.hFn.Write(c)
	t.last = c
	return c
}

// GetChallengeNBits squeezes a challenge and truncates it to nBits
// via a bit decomposition, mirroring GetChallengeNBits's masking.
func (t *Transcript) GetChallengeNBits(nBits int) frontend.Variable {
	c := t.GetChallenge()
	bits := t.api.ToBinary(c, t.api.Compiler().FieldBitLen())
	return t.api.FromBinary(bits[:nBits]...)
}
