package errors_test

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"

	novaerrors "github.com/vocdoni/nova-go/errors"
)

func TestIsMatchesWrappedSentinel(t *testing.T) {
	c := qt.New(t)
	wrapped := fmt.Errorf("folding step 3: %w", novaerrors.ErrNotSatisfied)
	c.Assert(novaerrors.Is(wrapped, novaerrors.ErrNotSatisfied), qt.IsTrue)
	c.Assert(novaerrors.Is(wrapped, novaerrors.ErrShapeMismatch), qt.IsFalse)
}

func TestNewBuildsDistinctSentinel(t *testing.T) {
	c := qt.New(t)
	a := novaerrors.New("boom")
	b := novaerrors.New("boom")
	c.Assert(a.Error(), qt.Equals, "boom")
	c.Assert(novaerrors.Is(a, b), qt.IsFalse)
}

type customErr struct{ msg string }

func (e *customErr) Error() string { return e.msg }

func TestAsFindsTypedError(t *testing.T) {
	c := qt.New(t)
	wrapped := fmt.Errorf("context: %w", &customErr{msg: "specific"})
	var target *customErr
	c.Assert(novaerrors.As(wrapped, &target), qt.IsTrue)
	c.Assert(target.msg, qt.Equals, "specific")
}
