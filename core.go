package main

import (
	"io"

	"github.com/ibcore/ibasic/internal/runeio"
)

const bellRune = 0x07

// bell sounds the terminal bell, used before every ERROR line per the
// external interface contract.
func (it *Interp) bell() error {
	_, err := runeio.WriteANSIRune(it.out, bellRune)
	return err
}

// readLine reads one line from the input queue (the reader WithInput last
// set, stdin by default), stripping the trailing line terminator. io.EOF is returned once the queue is exhausted.
func (it *Interp) readLine() (string, error) {
	var b []byte
	for {
		r, _, err := it.in.ReadRune()
		if err != nil {
			if err == io.EOF && len(b) > 0 {
				return string(b), nil
			}
			return "", err
		}
		if r == '\n' {
			return string(trimCR(b)), nil
		}
		b = append(b, byte(r))
	}
}

func trimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}
