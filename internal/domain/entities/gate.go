// Package entities defines core domain models and data structures.
package entities

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default values used when no config file is present
const (
	DefaultProjectRoot = "tic_tac_toe_backend"
	DefaultEnvironment = "venv"
	DefaultToolName    = "flake8"
	DefaultScanTarget  = "."
)

// GateConfig describes a single lint gate run
type GateConfig struct {
	ProjectRoot string
	Environment EnvironmentConfig
	Tool        ToolConfig
	Integrity   IntegrityConfig
}

// EnvironmentConfig points at the pre-provisioned execution environment
type EnvironmentConfig struct {
	Path string // relative paths are resolved against ProjectRoot
}

// ToolConfig describes how the analysis tool is invoked
type ToolConfig struct {
	Name   string
	Args   []string
	Target string // appended after Args
}

// IntegrityConfig pins the resolved tool executable
type IntegrityConfig struct {
	SHA256    string
	Signature string
	Keyring   string
}

// Enabled reports whether any integrity pin is configured
func (i IntegrityConfig) Enabled() bool {
	return i.SHA256 != "" || i.Signature != ""
}

// DefaultGateConfig returns the fixed configuration: lint the whole
// tic_tac_toe_backend tree with flake8 from its venv.
func DefaultGateConfig() *GateConfig {
	return &GateConfig{
		ProjectRoot: DefaultProjectRoot,
		Environment: EnvironmentConfig{Path: DefaultEnvironment},
		Tool: ToolConfig{
			Name:   DefaultToolName,
			Target: DefaultScanTarget,
		},
	}
}

// Validate checks the config for values the gate cannot run with
func (c *GateConfig) Validate() error {
	if strings.TrimSpace(c.ProjectRoot) == "" {
		return fmt.Errorf("project_root must not be empty")
	}
	if strings.TrimSpace(c.Tool.Name) == "" {
		return fmt.Errorf("tool.name must not be empty")
	}
	if c.Integrity.Signature != "" && c.Integrity.Keyring == "" {
		return fmt.Errorf("integrity.signature requires integrity.keyring")
	}
	if sum := c.Integrity.SHA256; sum != "" && len(sum) != 64 {
		return fmt.Errorf("integrity.sha256 must be a 64 character hex digest, got %d characters", len(sum))
	}
	return nil
}

// EnvironmentDir returns the environment path resolved against root
func (c *GateConfig) EnvironmentDir(root string) string {
	if c.Environment.Path == "" || filepath.IsAbs(c.Environment.Path) {
		return c.Environment.Path
	}
	return filepath.Join(root, c.Environment.Path)
}

// ToolArgs returns the full argument list passed to the tool
func (c *GateConfig) ToolArgs() []string {
	args := make([]string, 0, len(c.Tool.Args)+1)
	args = append(args, c.Tool.Args...)
	if c.Tool.Target != "" {
		args = append(args, c.Tool.Target)
	}
	return args
}
