package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchLine(t *testing.T, it *Interp, line string) error {
	t.Helper()
	cur := newCursor(line)
	return it.dispatch(cur)
}

func TestDispatch_PrintVariants(t *testing.T) {
	it, out := newTestInterp(t, "")

	require.NoError(t, dispatchLine(t, it, "PRINT"))
	require.NoError(t, dispatchLine(t, it, `PRINT "hello"`))
	require.NoError(t, dispatchLine(t, it, "PRINT 1+2"))
	it.out.Flush()
	assert.Equal(t, "0\nhello\n3\n", out.String())
}

func TestDispatch_PrintUnterminatedString(t *testing.T) {
	it, _ := newTestInterp(t, "")
	err := dispatchLine(t, it, `PRINT "hello`)
	assert.ErrorIs(t, err, errUnterminatedString)
}

func TestDispatch_Let(t *testing.T) {
	it, _ := newTestInterp(t, "")
	require.NoError(t, dispatchLine(t, it, "LET A=5"))
	assert.Equal(t, Value(5), it.env.get('A'))

	err := dispatchLine(t, it, "LET 1=5")
	assert.ErrorIs(t, err, errExpectedVarForLet)

	err = dispatchLine(t, it, "LET A5")
	assert.ErrorIs(t, err, errExpectedEqualInLet)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	it, _ := newTestInterp(t, "")
	err := dispatchLine(t, it, "FROBNICATE")
	assert.ErrorIs(t, err, errUnknownCommand)
}

func TestDispatch_BlankIsNoop(t *testing.T) {
	it, _ := newTestInterp(t, "")
	assert.NoError(t, dispatchLine(t, it, "   "))
}

func TestDispatch_Rem(t *testing.T) {
	it, _ := newTestInterp(t, "")
	assert.NoError(t, dispatchLine(t, it, "REM this is ignored entirely"))
}

func TestDispatch_IfNestedThen(t *testing.T) {
	it, _ := newTestInterp(t, "")
	require.NoError(t, dispatchLine(t, it, "LET A=1"))
	require.NoError(t, dispatchLine(t, it, "IF A=1 THEN IF A<5 THEN LET A=9"))
	assert.Equal(t, Value(9), it.env.get('A'))
}

func TestDispatch_IfBadOperator(t *testing.T) {
	it, _ := newTestInterp(t, "")
	err := dispatchLine(t, it, "IF A@1 THEN 10")
	assert.ErrorIs(t, err, errExpectedOpInIf)
}

func TestDispatch_IfMissingThen(t *testing.T) {
	it, _ := newTestInterp(t, "")
	err := dispatchLine(t, it, "IF A=1 GOTO 10")
	assert.ErrorIs(t, err, errExpectedThenInIf)
}

func TestDispatch_ModuleHookStub(t *testing.T) {
	it, out := newTestInterp(t, "")
	require.NoError(t, dispatchLine(t, it, "$MERGE foo.bas"))
	it.out.Flush()
	assert.Contains(t, out.String(), "FRAMEWORK: Command $MERGE is not implemented.")
}

func TestDispatch_ModulePeekPoke(t *testing.T) {
	it, out := newTestInterp(t, "")
	require.NoError(t, dispatchLine(t, it, "$POKE 4 7"))
	require.NoError(t, dispatchLine(t, it, "$PEEK 4"))
	it.out.Flush()
	assert.Equal(t, "7\n", out.String())
}

func TestDispatch_ListRejectsWhileRunning(t *testing.T) {
	it, _ := newTestInterp(t, "")
	it.env.inProgram = true
	err := dispatchLine(t, it, "LIST")
	assert.ErrorIs(t, err, errCantListInProgram)
}

func TestDispatch_ListAllowedInDirectModeWhileRunningFlagSet(t *testing.T) {
	it, _ := newTestInterp(t, "")
	it.env.running = true
	err := dispatchLine(t, it, "LIST")
	assert.NoError(t, err)
}

func TestDispatch_NewResetsModuleScratch(t *testing.T) {
	it, out := newTestInterp(t, "")
	require.NoError(t, dispatchLine(t, it, "$POKE 4 7"))
	require.NoError(t, dispatchLine(t, it, "NEW"))

	require.NoError(t, dispatchLine(t, it, "$PEEK 4"))
	it.out.Flush()
	assert.Equal(t, "0\n", out.String())
}

func TestDispatch_SaveRequiresFilename(t *testing.T) {
	it, _ := newTestInterp(t, "")
	err := dispatchLine(t, it, "SAVE")
	assert.ErrorIs(t, err, errFilenameRequired)
}
