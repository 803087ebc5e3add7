package cyclefold

import (
	"github.com/vocdoni/nova-go/commitment/pedersen"
)

// CommittedInstance is the CF track's relaxed running instance:
// structurally identical to nova.CommittedInstance, but its witness
// commitments are Pedersen commitments over C2 (BW6-761) to
// Fq-native scalars rather than over C1 to BN254-scalar-field ones.
type CommittedInstance struct {
	CmE *pedersen.Commitment
	CmW *pedersen.Commitment
	U   Scalar
	X   Vector
}

// Witness is the CF track's native opening data.
type Witness struct {
	W  Vector
	E  Vector
	RW Scalar
	RE Scalar
}

// Dummy returns the CF track's base-case running instance/witness at
// i=0, mirroring nova.Dummy.
func Dummy(pp *pedersen.Params, nWitness, nConstraints int) (*CommittedInstance, *Witness) {
	w := &Witness{
		W:  newVector(nWitness),
		E:  newVector(nConstraints),
		RW: zero(),
		RE: zero(),
	}
	cmW, _ := pedersen.CommitNative(pp, w.W.toBigInts(), nil, false)
	cmE, _ := pedersen.CommitNative(pp, w.E.toBigInts(), nil, false)
	inst := &CommittedInstance{
		CmE: cmE,
		CmW: cmW,
		U:   one(),
		X:   newVector(0),
	}
	return inst, w
}

func zeroCommitment(pp *pedersen.Params) *pedersen.Commitment {
	cm, _ := pedersen.CommitNative(pp, nil, nil, false)
	return cm
}
