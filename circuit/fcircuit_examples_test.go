package circuit_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/circuit"
	"github.com/vocdoni/nova-go/field"
)

// TestCubicFCircuitNativeMatchesSpecExample checks spec.md §8 scenario
// 1's worked values: z_0=[3], z_1=[35], z_2=[42915].
func TestCubicFCircuitNativeMatchesSpecExample(t *testing.T) {
	c := qt.New(t)
	f := circuit.CubicFCircuit{}
	c.Assert(f.Arity(), qt.Equals, 1)

	z0 := field.Vector{field.FromInt64(3)}
	z1, err := f.Native(0, z0, nil)
	c.Assert(err, qt.IsNil)
	want1 := field.FromInt64(35)
	c.Assert(z1[0].Equal(&want1), qt.IsTrue)

	z2, err := f.Native(1, z1, nil)
	c.Assert(err, qt.IsNil)
	want2 := field.FromInt64(42915)
	c.Assert(z2[0].Equal(&want2), qt.IsTrue)
}

// TestIdentityFCircuitNativeTenSteps checks spec.md §8 scenario 2:
// state_len=2, z_0=[0,1], unchanged after 10 steps.
func TestIdentityFCircuitNativeTenSteps(t *testing.T) {
	c := qt.New(t)
	f := circuit.IdentityFCircuit{StateLen: 2}
	c.Assert(f.Arity(), qt.Equals, 2)

	z := field.Vector{field.Zero(), field.One()}
	for i := uint64(0); i < 10; i++ {
		next, err := f.Native(i, z, nil)
		c.Assert(err, qt.IsNil)
		z = next
	}
	c.Assert(z[0].IsZero(), qt.IsTrue)
	one := field.One()
	c.Assert(z[1].Equal(&one), qt.IsTrue)
}
