package main

import "fmt"

// dumpState writes a snapshot of interpreter state through the "DUMP" log
// level: the program counter and its corresponding line number, the call
// stack as both store indices and line numbers, every non-zero variable,
// and the current program listing. Intended for --dump offline inspection,
// not for the BASIC-level protocol on stdout.
func (it *Interp) dumpState() {
	if it.dump == nil {
		return
	}
	fmt.Fprintf(it.dump, "pc=%d%s\n", it.env.pc, lineSuffix(it, it.env.pc))

	if depth := it.env.depth(); depth > 0 {
		for i := depth - 1; i >= 0; i-- {
			idx := it.env.stack[i]
			fmt.Fprintf(it.dump, "stack[%d]=%d%s\n", i, idx, lineSuffix(it, idx))
		}
	}

	for ch := byte('A'); ch <= 'Z'; ch++ {
		if v := it.env.get(ch); v != 0 {
			fmt.Fprintf(it.dump, "var %c=%s\n", ch, v)
		}
	}

	it.store.iterateAscending(func(l programLine) error {
		fmt.Fprintf(it.dump, "%d %s\n", l.number, l.text)
		return nil
	})

	it.dump.Sync()
}

func lineSuffix(it *Interp, idx int) string {
	if idx < 0 || idx >= it.store.count() {
		return ""
	}
	return fmt.Sprintf(" (line %d)", it.store.at(idx).number)
}
