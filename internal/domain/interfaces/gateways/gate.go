// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"
	"io"
)

// WorkingContext resolves and checks the project root
type WorkingContext interface {
	// Enter returns the absolute project root, or an error if it is not an
	// existing directory.
	Enter(root string) (string, error)
}

// Environment is an activated execution environment
type Environment struct {
	Dir  string   // environment root
	Bin  string   // executables directory prepended to PATH
	Vars []string // full child process environment, KEY=VALUE
}

// EnvironmentActivator makes the analysis tool callable
type EnvironmentActivator interface {
	Activate(envDir string) (*Environment, error)
	// ResolveTool finds name on the activated PATH. A name containing a path
	// separator is a path, relative ones are taken from root.
	ResolveTool(env *Environment, root, name string) (string, error)
}

// IntegrityVerifier checks a resolved tool executable against pinned values
type IntegrityVerifier interface {
	VerifyChecksum(ctx context.Context, filePath, expectedSum string) error
	VerifyGPGSignatureFromFile(filePath, sigPath string) error
	ImportGPGKeyFromFile(keyPath string) error
}

// ToolInvocation describes one synchronous run of the analysis tool
type ToolInvocation struct {
	Path   string
	Args   []string
	Dir    string
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
}

// ToolRunner runs the analysis tool and reports its exit status
type ToolRunner interface {
	// Run blocks until the tool terminates. A non-nil error means the tool
	// could not be started; a tool that ran and exited non-zero is reported
	// through the exit code only.
	Run(ctx context.Context, inv ToolInvocation) (int, error)
}
