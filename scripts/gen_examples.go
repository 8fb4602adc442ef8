// Command gen_examples runs every examples/*.bas transcript through the
// built interpreter and writes its stdout next to the source as
// examples/<name>.expected, for use as golden output in integration tests.
//
//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	matches, err := filepath.Glob("examples/*.bas")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, src := range matches {
		src := src
		eg.Go(func() error { return render(ctx, src) })
	}
	if err := eg.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func render(ctx context.Context, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	dst := src[:len(src)-len(filepath.Ext(src))] + ".expected"
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	cmd := exec.CommandContext(ctx, "go", "run", ".")
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	return nil
}
