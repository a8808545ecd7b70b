package analyzer

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// CommandRunner abstracts child-process execution so tests can substitute a
// fake without spawning real subprocesses.
type CommandRunner interface {
	// Run executes binary with args, honoring ctx for cancellation, and
	// returns captured stdout/stderr and the process exit code. A non-zero
	// exit code is not reported as err; err is reserved for launch failures
	// and cancellation.
	Run(ctx context.Context, binary string, args ...string) (stdout, stderr []byte, exitCode int, err error)
}

// execRunner is the production CommandRunner backed by os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, binary string, args ...string) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran and exited non-zero; the exit code carries
			// the outcome, so this is not a launch failure.
			return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
		}
		return stdout.Bytes(), stderr.Bytes(), -1, err
	}

	return stdout.Bytes(), stderr.Bytes(), 0, nil
}
