package types_test

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/nova-go/types"
)

func TestSliceOfConverts(t *testing.T) {
	c := qt.New(t)
	in := []int{1, 2, 3}
	out := types.SliceOf(in, func(v int) string {
		return big.NewInt(int64(v)).String()
	})
	c.Assert(out, qt.DeepEquals, []string{"1", "2", "3"})
}

func TestSliceOfEmpty(t *testing.T) {
	c := qt.New(t)
	out := types.SliceOf([]int{}, func(v int) int { return v * 2 })
	c.Assert(len(out), qt.Equals, 0)
}

func TestBigIntConverter(t *testing.T) {
	c := qt.New(t)
	in := []*big.Int{big.NewInt(7), big.NewInt(42)}
	out := types.SliceOf(in, types.BigIntConverter)
	c.Assert(len(out), qt.Equals, 2)
	c.Assert((*big.Int)(out[0]).Cmp(big.NewInt(7)), qt.Equals, 0)
	c.Assert((*big.Int)(out[1]).Cmp(big.NewInt(42)), qt.Equals, 0)
}
