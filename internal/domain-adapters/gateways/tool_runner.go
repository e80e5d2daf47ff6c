package gateways

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/ochairo/lintgate/internal/domain/interfaces/gateways"
)

// toolRunner runs the analysis tool as a blocking sub-process
type toolRunner struct{}

// NewToolRunner creates a new tool runner
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewToolRunner() *toolRunner {
	return &toolRunner{}
}

// Run executes the tool and returns its exit status. Output streams are
// connected directly to the invocation's writers, os.Stdout/os.Stderr when
// unset, so diagnostics pass through unmodified. Cancelling ctx interrupts
// the tool and still waits for its status.
func (r *toolRunner) Run(ctx context.Context, inv gateways.ToolInvocation) (int, error) {
	if inv.Path == "" {
		return -1, fmt.Errorf("no tool executable given")
	}

	//nolint:gosec // G204: the tool path comes from the gate configuration
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Cancel = func() error {
		if err := cmd.Process.Signal(os.Interrupt); err != nil && !errors.Is(err, os.ErrProcessDone) {
			// Interrupt is not deliverable on every platform
			return cmd.Process.Kill()
		}
		return nil
	}
	cmd.Dir = inv.Dir
	if inv.Env != nil {
		cmd.Env = inv.Env
	}

	cmd.Stdout = inv.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = inv.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the process was terminated by a signal
		return exitErr.ExitCode(), nil
	}
	if cmd.ProcessState != nil {
		// exited cleanly after ctx was cancelled
		return cmd.ProcessState.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to start %s: %w", inv.Path, err)
}
