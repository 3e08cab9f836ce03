package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recipebox/internal/cookbook"
)

const (
	exitFailure     = 1
	exitTempFail    = 75 // EX_TEMPFAIL
	exitInterrupted = 130
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	cancel()
	if err == nil {
		return
	}
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "recipebox:", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to a process status. A held cookbook lock is
// reported as temporary so wrapper scripts can retry.
func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.Is(err, cookbook.ErrLocked):
		return exitTempFail
	default:
		return exitFailure
	}
}
