package main

import (
	"strconv"
	"strings"
)

// builtinModuleHook recognizes a small set of "$..." extensions backed by
// it.moduleMem ($PEEK/$POKE, a scratch read/write pair) and falls through to
// the core's unimplemented-command stub for everything else, including
// $IMPORT/$INCLUDE/$MERGE which the core reserves but does not implement.
func builtinModuleHook(it *Interp, keyword, tail string) error {
	switch keyword {
	case "$PEEK":
		return moduleHookPeek(it, tail)
	case "$POKE":
		return moduleHookPoke(it, tail)
	default:
		return defaultModuleHook(it, keyword, tail)
	}
}

func moduleHookPeek(it *Interp, tail string) error {
	addr, err := strconv.Atoi(strings.TrimSpace(tail))
	if err != nil {
		return errInvalidNumber
	}
	v, err := it.moduleMem.Load(uint(addr))
	if err != nil {
		return err
	}
	return it.println(strconv.Itoa(v))
}

func moduleHookPoke(it *Interp, tail string) error {
	fields := strings.Fields(tail)
	if len(fields) != 2 {
		return errExpectedNumber
	}
	addr, err := strconv.Atoi(fields[0])
	if err != nil {
		return errInvalidNumber
	}
	val, err := strconv.Atoi(fields[1])
	if err != nil {
		return errInvalidNumber
	}
	return it.moduleMem.Stor(uint(addr), val)
}
