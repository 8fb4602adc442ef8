package main

import "time"

// run implements the RUN procedure from the execution-loop design: reset
// state, then repeatedly execute the statement at the program counter,
// auto-incrementing only when the statement did not itself branch.
func (it *Interp) run() error {
	it.env.reset()
	it.env.running = true
	it.env.inProgram = true
	defer func() { it.env.inProgram = false }()

	deadline := time.Time{}
	if it.runTimeout > 0 {
		deadline = timeNow().Add(it.runTimeout)
	}

	for it.env.running && it.env.pc < it.store.count() {
		if !deadline.IsZero() && timeNow().After(deadline) {
			it.env.running = false
			return errRunTimedOut
		}

		prevPC := it.env.pc
		line := it.store.at(it.env.pc)
		it.traceStatement(line.text)

		cur := newCursor(line.text)
		if err := it.dispatch(cur); err != nil {
			it.env.running = false
			return err
		}

		if it.env.running && it.env.pc == prevPC {
			it.env.pc++
		}
	}
	it.env.running = false
	return nil
}

// timeNow is a var so tests can stub wall-clock time without touching the
// global clock.
var timeNow = time.Now
