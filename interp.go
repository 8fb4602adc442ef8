package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ibcore/ibasic/internal/fileinput"
	"github.com/ibcore/ibasic/internal/flushio"
	"github.com/ibcore/ibasic/internal/logio"
	"github.com/ibcore/ibasic/internal/mem"
)

const (
	dialect = "core"
	version = "1.0"
)

// ModuleHook handles any statement whose keyword begins with "$", the
// core's one pluggable extension point. tail is the unparsed remainder of
// the line after the keyword and leading whitespace.
type ModuleHook func(it *Interp, keyword, tail string) error

// defaultModuleHook is the stub the core ships with: it reports the
// command as unimplemented and does not halt the program.
func defaultModuleHook(it *Interp, keyword, tail string) error {
	return it.printf("FRAMEWORK: Command %s is not implemented.\n", keyword)
}

// Interp is the top-level interpreter: the program store, environment,
// external I/O, and configuration an interactive session needs. It is the
// single owned structure the design notes call for in place of scattered
// package-level mutable state.
type Interp struct {
	store *programStore
	env   *environment

	in  *fileinput.Input
	out flushio.WriteFlusher

	log *logio.Logger
	dump *logio.Writer

	storeLimit int
	lineLimit  int
	stackLimit int
	lprintPath string
	runTimeout time.Duration
	debug      bool

	module    ModuleHook
	moduleMem mem.Ints

	debugf func(string, ...interface{})
}

// New builds an Interp with the given options applied over sane defaults:
// stdin/stdout console I/O, default store/line/stack limits, a stderr
// logger, "lprint.out" as the LPRINT sink, and the built-in module hook
// ($PEEK/$POKE, falling back to the unimplemented-command stub).
func New(opts ...Option) *Interp {
	it := &Interp{
		storeLimit: defaultStoreLimit,
		lineLimit:  defaultLineLimit,
		stackLimit: defaultCallStackLimit,
		lprintPath: "lprint.out",
		module:     builtinModuleHook,
		log:        &logio.Logger{},
	}
	it.in = &fileinput.Input{Queue: []io.Reader{os.Stdin}}
	it.out = flushio.NewWriteFlusher(os.Stdout)
	it.log.SetOutput(os.Stderr)

	for _, opt := range opts {
		opt.apply(it)
	}

	it.store = newProgramStore(it.storeLimit, it.lineLimit)
	it.env = newEnvironment(it.stackLimit)
	it.env.debug = it.debug
	it.debugf = it.log.Leveledf("")
	return it
}

// capacityBytes reports the program-storage capacity in bytes, used by the
// startup banner's "<K> kbytes Free" line.
func (it *Interp) capacityBytes() int {
	return it.storeLimit * it.lineLimit
}

func (it *Interp) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(it.out, format, args...)
	return err
}

func (it *Interp) println(s string) error {
	_, err := io.WriteString(it.out, s+"\n")
	return err
}

func (it *Interp) traceStatement(text string) {
	if it.debug {
		it.debugf("[DEBUG] %s", text)
	}
}
