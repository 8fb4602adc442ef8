package main

import (
	"io"
	"time"

	"github.com/ibcore/ibasic/internal/fileinput"
	"github.com/ibcore/ibasic/internal/flushio"
	"github.com/ibcore/ibasic/internal/logio"
)

// Option configures an Interp at construction time, mirroring the
// functional-options pattern used throughout this module's ancestry: each
// option is a small closure applying one setting, composable in any order.
type Option interface {
	apply(*Interp)
}

type optionFunc func(*Interp)

func (f optionFunc) apply(it *Interp) { f(it) }

// WithInput replaces the REPL's input queue; defaults to stdin alone.
func WithInput(r io.Reader) Option {
	return optionFunc(func(it *Interp) {
		it.in = &fileinput.Input{Queue: []io.Reader{r}}
	})
}

// WithOutput sets the console output sink; defaults to stdout.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(it *Interp) {
		it.out = flushio.NewWriteFlusher(w)
	})
}

// WithLogOutput sets the stream ambient error reports and --debug trace
// output are written to; defaults to stderr.
func WithLogOutput(w io.WriteCloser) Option {
	return optionFunc(func(it *Interp) { it.log.SetOutput(w) })
}

// WithLPrintPath overrides the fixed LPRINT sink filename (default
// "lprint.out").
func WithLPrintPath(path string) Option {
	return optionFunc(func(it *Interp) { it.lprintPath = path })
}

// WithStoreLimit overrides the program store's maximum line count (N).
func WithStoreLimit(n int) Option {
	return optionFunc(func(it *Interp) { it.storeLimit = n })
}

// WithLineLimit overrides a stored line's maximum text length (L).
func WithLineLimit(l int) Option {
	return optionFunc(func(it *Interp) { it.lineLimit = l })
}

// WithCallStackLimit overrides the GOSUB/RETURN call stack depth (S).
func WithCallStackLimit(s int) Option {
	return optionFunc(func(it *Interp) { it.stackLimit = s })
}

// WithTimeout bounds the wall-clock duration of a single RUN; zero disables
// the bound. A RUN that exceeds it fails with errRunTimedOut.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(it *Interp) { it.runTimeout = d })
}

// WithDebug enables "[DEBUG] "-prefixed statement tracing.
func WithDebug(enabled bool) Option {
	return optionFunc(func(it *Interp) { it.debug = enabled })
}

// WithDump enables a snapshot of interpreter state (program counter, call
// stack, non-zero variables, program listing) written once on process exit,
// through the "DUMP" log level.
func WithDump(enabled bool) Option {
	return optionFunc(func(it *Interp) {
		if !enabled {
			it.dump = nil
			return
		}
		it.dump = &logio.Writer{Logf: it.log.Leveledf("DUMP")}
	})
}

// WithModuleHook replaces the default "$..." fallthrough handler.
func WithModuleHook(h ModuleHook) Option {
	return optionFunc(func(it *Interp) { it.module = h })
}
