package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure kinds, usable with errors.Is
var (
	ErrSetupFailure = errors.New("setup failure")
	ErrCheckFailure = errors.New("check failure")
)

// Setup steps reported in GateError.Step
const (
	StepConfig      = "config"
	StepWorkdir     = "workdir"
	StepEnvironment = "environment"
	StepIntegrity   = "integrity"
	StepInvoke      = "invoke"
	StepCheck       = "check"
)

// GateError describes why a gate run failed
type GateError struct {
	Kind     error // ErrSetupFailure or ErrCheckFailure
	Step     string
	ExitCode int // tool exit code, only meaningful for ErrCheckFailure
	Err      error
}

// NewSetupError wraps err as a setup failure at step
func NewSetupError(step string, err error) *GateError {
	return &GateError{Kind: ErrSetupFailure, Step: step, Err: err}
}

// NewCheckError reports a non-clean tool result
func NewCheckError(exitCode int) *GateError {
	return &GateError{Kind: ErrCheckFailure, Step: StepCheck, ExitCode: exitCode}
}

func (e *GateError) Error() string {
	if errors.Is(e.Kind, ErrCheckFailure) {
		return fmt.Sprintf("analysis tool exited with status %d", e.ExitCode)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Step, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Is matches the failure kind sentinel
func (e *GateError) Is(target error) bool {
	return target == e.Kind
}

func (e *GateError) Unwrap() error {
	return e.Err
}

// IsSetupFailure reports whether err is a setup failure
func IsSetupFailure(err error) bool {
	return errors.Is(err, ErrSetupFailure)
}
