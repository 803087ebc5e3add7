// Package decider implements the onchain decider (spec.md §4.7, C8):
// the final compression step that turns an IVC proof accumulated by
// package nova into a single constant-size Groth16 proof plus two KZG
// openings, verifiable either natively or via EVM calldata (package
// solidity's teacher pattern, adapted here as PrepareCalldata).
package decider

import (
	"github.com/consensys/gnark/backend/groth16"

	"github.com/vocdoni/nova-go/commitment/kzg"
	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/field"
)

// PublicInputs is the decider verifier's public-input set (spec.md
// §4.7's "(pp_hash, i, z_0, z_n, U_final commitments as limbs, chal_W,
// chal_E, eval_W, eval_E, cmT limbs, r)"). The field order below is not
// the calldata order: PrepareCalldata documents the order it packs the
// values in. pp_hash is out of scope here: this package is parameterized by
// a fixed R1CS/SRS pair rather than a hashed-and-checked parameter
// set, so no separate pp_hash field is carried (see DESIGN.md).
type PublicInputs struct {
	I  uint64
	Z0 field.Vector
	Zn field.Vector

	FinalU   field.Element
	FinalX   field.Vector
	FinalCmE *pedersen.Commitment
	FinalCmW *pedersen.Commitment

	// FinalCmWKZG/FinalCmEKZG are separate KZG commitments to the same
	// W_final/E_final vectors the Pedersen commitments above commit
	// to. This implementation does not enforce that correspondence
	// cryptographically (see DESIGN.md): a production decider would
	// either prove the two commitments open the same vector in-circuit
	// or replace the folding scheme's Pedersen commitments with KZG
	// throughout.
	FinalCmWKZG *kzg.Commitment
	FinalCmEKZG *kzg.Commitment

	ChalW field.Element
	ChalE field.Element
	EvalW field.Element
	EvalE field.Element

	CmT *pedersen.Commitment
	R   field.Element
}

// Proof is the onchain decider's compressed proof: a single Groth16
// SNARK over BN254 plus the two KZG openings, the fold's cross-term
// commitment, the folding challenge, and the two evaluation
// challenges — spec.md §4.7's "Proof = (snark_proof, [pi_W,pi_E], cmT,
// r, [chal_W,chal_E])", with the two claimed evaluations carried
// alongside the openings that attest to them.
type Proof struct {
	SNARK groth16.Proof
	PiW   *kzg.OpeningProof
	PiE   *kzg.OpeningProof
	CmT   *pedersen.Commitment
	R     field.Element
	ChalW field.Element
	ChalE field.Element
}
