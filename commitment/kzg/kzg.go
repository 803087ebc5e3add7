// Package kzg implements the KZG10 polynomial commitment scheme the
// onchain decider (C8) opens twice per proof (spec.md §4.2), wrapping
// gnark-crypto's BN254 KZG implementation (ecc/bn254/kzg) the same
// way the teacher wraps BLS12-381 KZG for EIP-4844 blobs
// (crypto/blobs/kzg.go) — same pairing-check shape, generic-degree
// trusted setup instead of a fixed blob-sized one.
package kzg

import (
	"math/big"

	gkzg "github.com/consensys/gnark-crypto/ecc/bn254/kzg"

	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
)

// SRS is the trusted-setup powers of tau: powers_of_g has size
// NextPowerOfTwo(maxDegree)+1 (see Setup's doc comment — this is
// SPEC_FULL.md's resolution of the "powers_of_g off-by-one" open
// question).
type SRS struct {
	inner gkzg.SRS
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// Setup derives a trusted setup supporting polynomials up to degree
// maxDegree. Internally it builds NextPowerOfTwo(maxDegree)+1 powers
// of g (one extra power beyond the degree bound, since committing to
// a degree-d polynomial requires powers_of_g[0..d]). tau is the
// toxic-waste trapdoor; callers in production must discard it
// immediately after deriving the SRS (this function is also used
// directly by tests with a test-only tau).
func Setup(tau *big.Int, maxDegree uint64) (*SRS, error) {
	size := NextPowerOfTwo(maxDegree) + 1
	inner, err := gkzg.NewSRS(size, tau)
	if err != nil {
		return nil, err
	}
	return &SRS{inner: *inner}, nil
}

// Commitment is a KZG commitment: an MSM of trimmed polynomial
// coefficients against powers_of_g.
type Commitment struct {
	inner gkzg.Digest
}

func trim(coeffs field.Vector) field.Vector {
	end := len(coeffs)
	for end > 0 && coeffs[end-1].IsZero() {
		end--
	}
	return coeffs[:end]
}

// Commit computes the commitment of the polynomial given by coeffs
// (coefficients in increasing degree order), after trimming trailing
// zero coefficients. Returns PolynomialTooLarge if the trimmed degree
// is at or beyond len(powers_of_g).
func Commit(srs *SRS, coeffs field.Vector) (*Commitment, error) {
	trimmed := trim(coeffs)
	if len(trimmed) > len(srs.inner.Pk.G1) {
		return nil, novaerrors.ErrPolynomialTooLarge
	}
	d, err := gkzg.Commit(trimmed, srs.inner.Pk)
	if err != nil {
		return nil, err
	}
	return &Commitment{inner: d}, nil
}

// OpeningProof is a KZG opening: the claimed evaluation p(z) and the
// quotient commitment MSM(q), q(X) = (p(X)-p(z))/(X-z).
type OpeningProof struct {
	ClaimedValue field.Element
	inner        gkzg.OpeningProof
}

// Prove computes an opening proof of coeffs at the evaluation point z
// by polynomial long division. Hiding openings are not supported
// (spec.md §9 open question, resolved in SPEC_FULL.md): the hiding
// parameter only exists so callers fail loudly with
// HidingNotSupported instead of silently getting a non-hiding proof.
func Prove(srs *SRS, coeffs field.Vector, z field.Element, hiding bool) (*OpeningProof, error) {
	if hiding {
		return nil, novaerrors.ErrHidingNotSupported
	}
	trimmed := trim(coeffs)
	if len(trimmed) > len(srs.inner.Pk.G1) {
		return nil, novaerrors.ErrPolynomialTooLarge
	}
	proof, err := gkzg.Open(trimmed, z, srs.inner.Pk)
	if err != nil {
		return nil, err
	}
	return &OpeningProof{ClaimedValue: proof.ClaimedValue, inner: proof}, nil
}

// Verify checks the pairing equation e(C−y·g+z·π, h) = e(π, β·h).
func Verify(srs *SRS, cm *Commitment, proof *OpeningProof, z field.Element) error {
	if err := gkzg.Verify(&cm.inner, &proof.inner, z, srs.inner.Vk); err != nil {
		return novaerrors.ErrCommitmentVerificationFail
	}
	return nil
}

// G1Bytes serializes a commitment to compressed G1 bytes, for
// absorbing into a transcript or packing into decider calldata.
func (c *Commitment) G1Bytes() []byte {
	b := c.inner.Bytes()
	return b[:]
}

// Point returns the commitment's affine (x, y) coordinates, for
// packing into decider calldata (package decider).
func (c *Commitment) Point() (*big.Int, *big.Int) {
	return c.inner.X.BigInt(new(big.Int)), c.inner.Y.BigInt(new(big.Int))
}

// QuotientPoint returns the opening proof's quotient commitment H's
// affine (x, y) coordinates, for packing into decider calldata
// (package decider).
func (p *OpeningProof) QuotientPoint() (*big.Int, *big.Int) {
	return p.inner.H.X.BigInt(new(big.Int)), p.inner.H.Y.BigInt(new(big.Int))
}
