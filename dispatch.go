package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/ibcore/ibasic/internal/mem"
)

// handler executes one statement's effect, given the cursor positioned just
// after the leading keyword and trailing whitespace.
type handler func(it *Interp, cur *cursor) error

// dispatchTable maps an uppercase keyword to its handler capability, per the
// design note preferring an explicit keyword->handler mapping over dynamic
// method dispatch. $-prefixed keywords never appear here; they fall through
// to the module hook below.
var dispatchTable = map[string]handler{
	"PRINT":  doPrint,
	"LPRINT": doLPrint,
	"LET":    doLet,
	"INPUT":  doInput,
	"GOTO":   doGoto,
	"GOSUB":  doGosub,
	"RETURN": doReturn,
	"IF":     doIf,
	"REM":    doRem,
	"END":    doEnd,
	"STOP":   doEnd,
	"BEEP":   doBeep,
	"RUN":    doRun,
	"LIST":   doList,
	"NEW":    doNew,
	"SAVE":   doSave,
	"LOAD":   doLoad,
	"SYSTEM": doSystem,
	"QUIT":   doQuit,
	"EXIT":   doQuit,
}

// exitProcess is overridden by tests so QUIT/EXIT can be exercised without
// actually terminating the test binary.
var exitProcess = os.Exit

// dispatch reads the leading keyword from cur and invokes its handler. It is
// re-entrant: IF's tail recursively calls dispatch again, so nested
// IF ... THEN IF ... THEN chains fall out naturally rather than needing an
// explicit frame stack.
func (it *Interp) dispatch(cur *cursor) error {
	cur.skipWS()
	if cur.atEnd() {
		return nil
	}
	kw := cur.readKeyword()
	if kw == "" {
		return errUnknownCommand
	}
	cur.skipWS()

	if strings.HasPrefix(kw, "$") {
		return it.module(it, kw, cur.rest())
	}

	h, ok := dispatchTable[kw]
	if !ok {
		return errUnknownCommand
	}
	return h(it, cur)
}

func doPrint(it *Interp, cur *cursor) error {
	cur.skipWS()
	if cur.atEnd() {
		return it.println("0")
	}
	if b, _ := cur.peek(); b == '"' {
		s, err := readQuotedString(cur)
		if err != nil {
			return err
		}
		return it.println(s)
	}
	v, err := newEvaluator(cur, it.env).evalExpression()
	if err != nil {
		return err
	}
	return it.println(v.String())
}

func readQuotedString(cur *cursor) (string, error) {
	cur.advance() // opening quote
	var b strings.Builder
	for {
		c, ok := cur.advance()
		if !ok {
			return "", errUnterminatedString
		}
		if c == '"' {
			return b.String(), nil
		}
		b.WriteByte(c)
	}
}

func doLPrint(it *Interp, cur *cursor) error {
	cur.skipWS()
	var v Value
	if !cur.atEnd() {
		var err error
		v, err = newEvaluator(cur, it.env).evalExpression()
		if err != nil {
			return err
		}
	}
	f, err := os.OpenFile(it.lprintPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errCannotOpenLPrint
	}
	defer f.Close()
	_, err = f.WriteString(v.String() + "\n")
	return err
}

func doLet(it *Interp, cur *cursor) error {
	cur.skipWS()
	b, ok := cur.peek()
	if !ok || !isLetter(b) {
		return errExpectedVarForLet
	}
	ch, _ := cur.readIdentifierChar()
	if ch < 'A' || ch > 'Z' {
		return errInvalidVariable
	}
	cur.skipWS()
	eb, ok := cur.peek()
	if !ok || eb != '=' {
		return errExpectedEqualInLet
	}
	cur.advance()
	cur.skipWS()
	v, err := newEvaluator(cur, it.env).evalExpression()
	if err != nil {
		return err
	}
	it.env.set(ch, v)
	return nil
}

func doInput(it *Interp, cur *cursor) error {
	cur.skipWS()
	b, ok := cur.peek()
	if !ok || !isLetter(b) {
		return errExpectedVarForInput
	}
	ch, _ := cur.readIdentifierChar()
	if ch < 'A' || ch > 'Z' {
		return errInvalidVariable
	}
	if err := it.printf("? "); err != nil {
		return err
	}
	it.out.Flush()
	line, err := it.readLine()
	if err != nil {
		it.env.running = false
		return nil
	}
	ic := newCursor(strings.TrimSpace(line))
	n, ok, perr := ic.readInteger()
	if perr != nil || !ok {
		n = 0
	}
	it.env.set(ch, valueOf(n))
	return nil
}

func doGoto(it *Interp, cur *cursor) error {
	n, ok, err := cur.readInteger()
	if err != nil {
		return err
	}
	if !ok {
		return errExpectedNumber
	}
	idx, found := it.store.lookup(n)
	if !found {
		return errLineNotFound
	}
	it.env.pc = idx
	return nil
}

func doGosub(it *Interp, cur *cursor) error {
	if err := it.env.push(it.env.pc + 1); err != nil {
		return err
	}
	return doGoto(it, cur)
}

func doReturn(it *Interp, cur *cursor) error {
	idx, err := it.env.pop()
	if err != nil {
		return err
	}
	it.env.pc = idx
	return nil
}

func doRem(it *Interp, cur *cursor) error {
	cur.pos = len(cur.text)
	return nil
}

func doEnd(it *Interp, cur *cursor) error {
	it.env.running = false
	return nil
}

func doBeep(it *Interp, cur *cursor) error {
	return it.bell()
}

func doSystem(it *Interp, cur *cursor) error {
	return it.module(it, "SYSTEM", cur.rest())
}

func doQuit(it *Interp, cur *cursor) error {
	it.env.running = false
	it.out.Flush()
	exitProcess(0)
	return nil
}

// relational operator parse/compare for IF, separated from the IF state
// machine itself for clarity and testability.
func readRelop(cur *cursor) (string, error) {
	b, ok := cur.peek()
	if !ok {
		return "", errExpectedOpInIf
	}
	switch b {
	case '=':
		cur.advance()
		return "=", nil
	case '<':
		cur.advance()
		if nb, ok := cur.peek(); ok && nb == '>' {
			cur.advance()
			return "<>", nil
		}
		return "<", nil
	case '>':
		cur.advance()
		return ">", nil
	default:
		return "", errExpectedOpInIf
	}
}

func compareValues(lhs Value, op string, rhs Value) bool {
	switch op {
	case "=":
		return lhs == rhs
	case "<>":
		return lhs != rhs
	case "<":
		return lhs < rhs
	case ">":
		return lhs > rhs
	}
	return false
}

// doIf implements the five-state IF machine described in the component
// design: expect_lhs, expect_op, expect_rhs, expect_then, dispatch_tail.
func doIf(it *Interp, cur *cursor) error {
	lhs, err := newEvaluator(cur, it.env).evalExpression() // expect_lhs
	if err != nil {
		return err
	}
	cur.skipWS()
	op, err := readRelop(cur) // expect_op
	if err != nil {
		return err
	}
	cur.skipWS()
	rhs, err := newEvaluator(cur, it.env).evalExpression() // expect_rhs
	if err != nil {
		return err
	}
	cur.skipWS()
	if !cur.matchKeyword("THEN") { // expect_then
		return errExpectedThenInIf
	}
	cur.skipWS()

	if !compareValues(lhs, op, rhs) {
		return nil
	}

	// dispatch_tail
	if b, ok := cur.peek(); ok && isDigit(b) {
		return doGoto(it, cur)
	}
	return it.dispatch(cur)
}

func doRun(it *Interp, cur *cursor) error {
	if it.env.inProgram {
		return errCantRunInProgram
	}
	return it.run()
}

func doList(it *Interp, cur *cursor) error {
	if it.env.inProgram {
		return errCantListInProgram
	}
	return it.store.iterateAscending(func(l programLine) error {
		return it.printf("%d %s\n", l.number, l.text)
	})
}

func doNew(it *Interp, cur *cursor) error {
	if it.env.inProgram {
		return errCantNewInProgram
	}
	it.store.clear()
	it.env.reset()
	it.moduleMem = mem.Ints{}
	return nil
}

func doSave(it *Interp, cur *cursor) error {
	if it.env.inProgram {
		return errCantSaveInProgram
	}
	name := cur.rest()
	if name == "" {
		return errFilenameRequired
	}
	f, err := os.Create(name)
	if err != nil {
		return errCannotOpenFile
	}
	defer f.Close()
	return it.store.iterateAscending(func(l programLine) error {
		_, err := f.WriteString(strconv.Itoa(l.number) + " " + l.text + "\n")
		return err
	})
}

func doLoad(it *Interp, cur *cursor) error {
	if it.env.inProgram {
		return errCantLoadInProgram
	}
	name := cur.rest()
	if name == "" {
		return errFilenameRequired
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return errFileNotFound
	}
	it.store.clear()
	it.env.reset()
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := it.submitLine(line); err != nil {
			return err
		}
	}
	return nil
}
