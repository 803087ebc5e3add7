package nova_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/commitment/pedersen"
	"github.com/vocdoni/nova-go/crypto/ecc/bn254"
	"github.com/vocdoni/nova-go/field"
	"github.com/vocdoni/nova-go/nova"
)

func TestInstanceHashDeterministic(t *testing.T) {
	c := qt.New(t)
	pp := pedersen.Setup(&bn254.G1{}, 2)
	cm, err := pedersen.Commit(pp, field.Vector{field.FromInt64(1)}, field.Zero(), false)
	c.Assert(err, qt.IsNil)
	u := &nova.CommittedInstance{CmE: cm, CmW: cm, U: field.One(), X: field.NewVector(0)}

	z0 := field.Vector{field.FromInt64(1)}
	zi := field.Vector{field.FromInt64(2)}

	h1, err := nova.InstanceHash(1, z0, zi, u)
	c.Assert(err, qt.IsNil)
	h2, err := nova.InstanceHash(1, z0, zi, u)
	c.Assert(err, qt.IsNil)
	c.Assert(h1.Cmp(h2), qt.Equals, 0)
}

func TestInstanceHashSensitiveToStep(t *testing.T) {
	c := qt.New(t)
	pp := pedersen.Setup(&bn254.G1{}, 2)
	cm, err := pedersen.Commit(pp, field.Vector{field.FromInt64(1)}, field.Zero(), false)
	c.Assert(err, qt.IsNil)
	u := &nova.CommittedInstance{CmE: cm, CmW: cm, U: field.One(), X: field.NewVector(0)}

	z0 := field.Vector{field.FromInt64(1)}
	zi := field.Vector{field.FromInt64(2)}

	h1, err := nova.InstanceHash(1, z0, zi, u)
	c.Assert(err, qt.IsNil)
	h2, err := nova.InstanceHash(2, z0, zi, u)
	c.Assert(err, qt.IsNil)
	c.Assert(h1.Cmp(h2), qt.Not(qt.Equals), 0)
}
