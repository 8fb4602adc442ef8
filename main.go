// Command ibasic runs an interactive IB Core BASIC interpreter: a
// line-numbered editor over a stored program, a strict 8-bit arithmetic
// evaluator, and a small set of PRINT/LET/GOTO/GOSUB/IF statements, driven
// from stdin to stdout.
package main

import (
	"flag"
	"os"

	"github.com/ibcore/ibasic/internal/panicerr"
)

func main() {
	var (
		debug      = flag.Bool("debug", false, "enable [DEBUG] statement tracing")
		dump       = flag.Bool("dump", false, "log an interpreter state snapshot on exit")
		timeout    = flag.Duration("timeout", 0, "abort a RUN that exceeds this duration (0 disables)")
		storeLimit = flag.Int("store-limit", defaultStoreLimit, "maximum number of stored program lines (N)")
		lineLimit  = flag.Int("line-limit", defaultLineLimit, "maximum characters per stored line (L)")
		stackLimit = flag.Int("stack-limit", defaultCallStackLimit, "maximum GOSUB call-stack depth (S)")
	)
	flag.Parse()

	it := New(
		WithDebug(*debug),
		WithDump(*dump),
		WithTimeout(*timeout),
		WithStoreLimit(*storeLimit),
		WithLineLimit(*lineLimit),
		WithCallStackLimit(*stackLimit),
	)

	// Serve runs isolated in its own goroutine so a module hook panic (or an
	// unexpected runtime.Goexit from deep inside a handler) surfaces as a
	// normal error instead of taking down the whole process.
	if err := panicerr.Recover("ibasic", it.Serve); err != nil {
		it.log.Errorf("%+v", err)
	}
	os.Exit(it.log.ExitCode())
}
