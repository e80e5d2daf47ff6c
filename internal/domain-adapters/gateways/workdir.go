package gateways

import (
	"fmt"
	"os"
	"path/filepath"
)

// workingContext resolves the project root the gate runs in
type workingContext struct{}

// NewWorkingContext creates a new working context gateway
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewWorkingContext() *workingContext {
	return &workingContext{}
}

// Enter resolves root to an absolute path and checks it is a directory.
// The process working directory is left untouched; callers run the tool
// with the returned path as its working directory.
func (w *workingContext) Enter(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", abs)
	}

	return abs, nil
}
