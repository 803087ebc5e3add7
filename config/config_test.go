package config_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/config"
	"github.com/vocdoni/nova-go/types"
)

func TestDefaultSetsCurveCycle(t *testing.T) {
	c := qt.New(t)
	p := config.Default()
	c.Assert(p.MainCurve, qt.Equals, "bn254")
	c.Assert(p.AuxCurve, qt.Equals, "bw6761")
	c.Assert(p.Hiding, qt.IsFalse)
}

func TestApplyPushesGPUProverSwitch(t *testing.T) {
	c := qt.New(t)
	defer func() { types.UseGPUProver = false }()

	p := config.Default()
	p.UseGPUProver = true
	p.Apply()
	c.Assert(types.UseGPUProver, qt.IsTrue)

	p.UseGPUProver = false
	p.Apply()
	c.Assert(types.UseGPUProver, qt.IsFalse)
}
