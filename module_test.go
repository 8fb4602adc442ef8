package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_PeekDefaultsZero(t *testing.T) {
	it, out := newTestInterp(t, "")
	require.NoError(t, dispatchLine(t, it, "$PEEK 0"))
	it.out.Flush()
	assert.Equal(t, "0\n", out.String())
}

func TestModule_UnknownHookMessage(t *testing.T) {
	it, out := newTestInterp(t, "")
	require.NoError(t, dispatchLine(t, it, "$IMPORT foo"))
	it.out.Flush()
	assert.Equal(t, "FRAMEWORK: Command $IMPORT is not implemented.\n", out.String())
}

func TestModule_CustomHookOverride(t *testing.T) {
	called := false
	it := New(WithModuleHook(func(it *Interp, keyword, tail string) error {
		called = true
		return nil
	}))
	require.NoError(t, dispatchLine(t, it, "$CUSTOM"))
	assert.True(t, called)
}
