package main

import (
	"io"
	"strings"
)

// banner writes the three-line startup banner: the dialect/version line,
// the storage-capacity line, and the initial READY.
func (it *Interp) banner() error {
	if err := it.printf("BASIC++ (%s) v%s\n", dialect, version); err != nil {
		return err
	}
	if err := it.printf("%d kbytes Free\n", it.capacityBytes()/1024); err != nil {
		return err
	}
	return it.println("READY")
}

// submitLine classifies one line of input: a leading digit means a stored
// line (handed to the program store's upsert), anything else is dispatched
// immediately. It is shared by the REPL loop and LOAD. submitLineDirect
// additionally reports, as direct, whether the line was dispatched in direct
// mode, as opposed to stored into the program editor (the two report their
// results differently: only direct mode gets an OK/READY acknowledgement).
func (it *Interp) submitLine(line string) error {
	_, err := it.submitLineDirect(line)
	return err
}

func (it *Interp) submitLineDirect(line string) (direct bool, err error) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return false, nil
	}

	if isDigit(trimmed[0]) {
		lc := newCursor(trimmed)
		n, ok, err := lc.readInteger()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, errInvalidLineNumber
		}
		lc.skipWS()
		return false, it.store.upsert(n, lc.text[lc.pos:])
	}

	it.env.running = true
	it.env.pc = 0
	cur := newCursor(trimmed)
	err = it.dispatch(cur)
	it.env.running = false
	return true, err
}

// Serve runs the interactive REPL: print the banner, then read one line at
// a time, storing or dispatching each, printing OK/READY or ERROR/READY as
// appropriate, until the input is exhausted. On exit it writes one final
// state snapshot if --dump is enabled.
func (it *Interp) Serve() error {
	if err := it.banner(); err != nil {
		return err
	}
	defer it.out.Flush()
	defer func() {
		if it.dump != nil {
			it.dumpState()
		}
	}()

	for {
		if err := it.printf("> "); err != nil {
			return err
		}
		line, err := it.readLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if strings.TrimSpace(line) == "" {
			if err := it.println("READY"); err != nil {
				return err
			}
			continue
		}

		direct, derr := it.submitLineDirect(line)
		switch {
		case derr != nil:
			berr, ok := asBasicError(derr)
			if !ok {
				return derr
			}
			it.bell()
			if err := it.println(berr.Error()); err != nil {
				return err
			}
			if err := it.println("READY"); err != nil {
				return err
			}
		case direct:
			if err := it.println("OK"); err != nil {
				return err
			}
			if err := it.println("READY"); err != nil {
				return err
			}
		}
		if err := it.out.Flush(); err != nil {
			return err
		}
	}
}

func asBasicError(err error) (basicError, bool) {
	be, ok := err.(basicError)
	return be, ok
}
