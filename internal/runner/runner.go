package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Result describes one command execution.
type Result struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the command exited with status zero.
func (r Result) Succeeded() bool { return r.ExitCode == 0 }

// Runner executes a command string through a shell interpreter, streaming
// stdout to the terminal as it arrives while capturing both streams.
type Runner struct {
	Shell  string
	DryRun bool

	// Out receives the live stdout stream. Defaults to os.Stdout.
	Out io.Writer
	// Err receives the captured stderr after the command finishes.
	// Defaults to os.Stderr.
	Err io.Writer
}

// New creates a Runner for the given shell executable.
func New(shell string) *Runner {
	return &Runner{Shell: shell}
}

// Execute runs command via `<shell> -c` in cwd (empty means the process
// working directory). A non-zero exit status is reported through the Result,
// not as an error; errors are reserved for failures to run at all.
func (r *Runner) Execute(ctx context.Context, command, cwd string) (Result, error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := r.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	if r.DryRun {
		fmt.Fprintf(out, "[dry run] would execute: %s\n", command)
		return Result{Command: command}, nil
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Shell, "-c", command)
	cmd.Dir = cwd
	cmd.Stdout = io.MultiWriter(out, &stdout)
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if stderr.Len() > 0 {
		fmt.Fprint(errOut, stderr.String())
	}

	result := Result{
		Command: command,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, fmt.Errorf("running command: %w", runErr)
	}
	return result, nil
}
