package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterp(t *testing.T, input string) (*Interp, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	it := New(
		WithInput(bytes.NewBufferString(input)),
		WithOutput(&out),
	)
	return it, &out
}

func loadProgram(t *testing.T, it *Interp, lines ...string) {
	t.Helper()
	for _, l := range lines {
		require.NoError(t, it.submitLine(l))
	}
}

func TestRun_GosubReturn(t *testing.T) {
	it, out := newTestInterp(t, "")
	loadProgram(t, it,
		"10 LET A=0",
		"20 GOSUB 100",
		"30 PRINT A",
		"40 END",
		"100 LET A=A+1",
		"110 RETURN",
	)
	require.NoError(t, it.run())
	it.out.Flush()
	assert.Equal(t, "1\n", out.String())
}

func TestRun_IfImplicitGoto(t *testing.T) {
	it, out := newTestInterp(t, "")
	loadProgram(t, it,
		"10 LET A=1",
		"20 IF A<3 THEN 50",
		"30 PRINT 99",
		"40 END",
		"50 LET A=A+1",
		"60 GOTO 20",
	)
	require.NoError(t, it.run())
	it.out.Flush()
	assert.NotContains(t, out.String(), "99")
}

func TestRun_Precedence(t *testing.T) {
	it, out := newTestInterp(t, "")
	require.NoError(t, it.submitLine("PRINT 3+4*5"))
	require.NoError(t, it.submitLine("PRINT 3+(4*5)"))
	it.out.Flush()
	assert.Equal(t, "35\n23\n", out.String())
}

func TestRun_DivisionByZeroHalts(t *testing.T) {
	it, _ := newTestInterp(t, "")
	loadProgram(t, it, "10 PRINT 10/0")
	err := it.run()
	assert.ErrorIs(t, err, errDivisionByZero)
	assert.False(t, it.env.running)
}

func TestRun_GotoLineNotFound(t *testing.T) {
	it, _ := newTestInterp(t, "")
	loadProgram(t, it, "10 GOTO 999")
	err := it.run()
	assert.ErrorIs(t, err, errLineNotFound)
}
