package pkgmgr

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// runner executes a query command and returns its exit code. Arguments are
// passed as an argv slice, never through a shell, so a validated name can't be
// reinterpreted by the command line.
type runner interface {
	run(ctx context.Context, name string, args ...string) (int, error)
}

type realRunner struct{}

func (realRunner) run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	// A context deadline kills the child, which surfaces as an ExitError;
	// report the timeout itself so the caller treats it as inconclusive.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
