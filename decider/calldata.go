package decider

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"

	"github.com/vocdoni/nova-go/commitment/kzg"
	"github.com/vocdoni/nova-go/crypto/ecc"
	"github.com/vocdoni/nova-go/field"
)

// groth16Proof is the Solidity-facing Groth16 proof layout (without
// commitments): (a, b, c) in the Groth16 verifier contract's usual
// naming. Adapted from the teacher's Groth16CommitmentProof
// (solidity/solidity.go, now folded into this file since the onchain
// decider is this proof's only producer) — the Pedersen/PoK commitment
// pair that file also carried does not apply here: this repo's Groth16
// circuit (circuit.DeciderCircuit) has no in-circuit commitments of
// its own, so only (Ar, Bs, Krs) survive.
type groth16Proof struct {
	A [2]*big.Int
	B [2][2]*big.Int
	C [2]*big.Int
}

func fromGnarkProof(proof groth16.Proof) (*groth16Proof, error) {
	p, ok := proof.(*groth16_bn254.Proof)
	if !ok {
		return nil, fmt.Errorf("expected groth16_bn254.Proof, got %T", proof)
	}
	return &groth16Proof{
		A: [2]*big.Int{p.Ar.X.BigInt(new(big.Int)), p.Ar.Y.BigInt(new(big.Int))},
		B: [2][2]*big.Int{
			{p.Bs.X.A1.BigInt(new(big.Int)), p.Bs.X.A0.BigInt(new(big.Int))},
			{p.Bs.Y.A1.BigInt(new(big.Int)), p.Bs.Y.A0.BigInt(new(big.Int))},
		},
		C: [2]*big.Int{p.Krs.X.BigInt(new(big.Int)), p.Krs.Y.BigInt(new(big.Int))},
	}, nil
}

// pointOrIdentity returns a commitment's affine coordinates, or (0,0)
// for the point at infinity — spec.md §4.7's EVM calldata convention
// for the affine identity.
func pointOrIdentity(p ecc.Point) (*big.Int, *big.Int) {
	zero := p.New()
	zero.SetZero()
	if p.Equal(zero) {
		return big.NewInt(0), big.NewInt(0)
	}
	return p.Point()
}

// PrepareCalldata ABI-encodes a decider proof and its public inputs
// into the big-endian layout spec.md §4.7 fixes for the onchain
// verifier: (i, z_0, z_n, cmW_running, cmE_running, cmT, r, a, b, c,
// chal_W, chal_E, eval_W, eval_E, pi_W, pi_E). The 4-byte function
// selector is left to the caller (it depends on the target verifier
// contract's ABI, not on anything this package knows). The fresh
// per-step cmW spec.md §4.7 also lists ("cmW_incoming") is not
// re-submitted here: circuit.DeciderCircuit already binds cmW_running
// to a correct fold of it, so the SNARK alone attests to its value
// without the calldata needing to carry it separately.
func PrepareCalldata(pub *PublicInputs, proof *Proof) ([]byte, error) {
	g16, err := fromGnarkProof(proof.SNARK)
	if err != nil {
		return nil, err
	}

	uint256, err := abi.NewType("uint256", "", nil)
	if err != nil {
		return nil, err
	}
	uint256Arr, err := abi.NewType("uint256[]", "", nil)
	if err != nil {
		return nil, err
	}
	uint256x2, err := abi.NewType("uint256[2]", "", nil)
	if err != nil {
		return nil, err
	}
	uint256x2x2, err := abi.NewType("uint256[2][2]", "", nil)
	if err != nil {
		return nil, err
	}

	cmWRunX, cmWRunY := pointOrIdentity(pub.FinalCmW.Point)
	cmERunX, cmERunY := pointOrIdentity(pub.FinalCmE.Point)
	cmTX, cmTY := pointOrIdentity(proof.CmT.Point)

	args := abi.Arguments{
		{Type: uint256},    // i
		{Type: uint256Arr}, // z_0
		{Type: uint256Arr}, // z_n
		{Type: uint256x2},  // cmW_running
		{Type: uint256x2},  // cmE_running
		{Type: uint256x2},  // cmT (the fold's fresh cmW is folded into cmW_running already; cmT is the cross term)
		{Type: uint256},    // r
		{Type: uint256x2},  // a
		{Type: uint256x2x2},
		{Type: uint256x2}, // c
		{Type: uint256},   // chal_W
		{Type: uint256},   // chal_E
		{Type: uint256},   // eval_W
		{Type: uint256},   // eval_E
		{Type: uint256x2}, // pi_W (KZG opening quotient commitment)
		{Type: uint256x2}, // pi_E
	}

	return args.Pack(
		new(big.Int).SetUint64(pub.I),
		vectorToBigInts(pub.Z0),
		vectorToBigInts(pub.Zn),
		[2]*big.Int{cmWRunX, cmWRunY},
		[2]*big.Int{cmERunX, cmERunY},
		[2]*big.Int{cmTX, cmTY},
		pub.R.BigInt(new(big.Int)),
		g16.A,
		g16.B,
		g16.C,
		pub.ChalW.BigInt(new(big.Int)),
		pub.ChalE.BigInt(new(big.Int)),
		pub.EvalW.BigInt(new(big.Int)),
		pub.EvalE.BigInt(new(big.Int)),
		quotientPair(proof.PiW),
		quotientPair(proof.PiE),
	)
}

func quotientPair(p *kzg.OpeningProof) [2]*big.Int {
	x, y := p.QuotientPoint()
	return [2]*big.Int{x, y}
}

func vectorToBigInts(v field.Vector) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, e := range v {
		out[i] = e.BigInt(new(big.Int))
	}
	return out
}
