// Package yaml provides YAML-based gate configuration parsing and loading.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/lintgate/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	ProjectRoot string          `yaml:"project_root"`
	Environment yamlEnvironment `yaml:"environment"`
	Tool        yamlTool        `yaml:"tool"`
	Integrity   yamlIntegrity   `yaml:"integrity"`
}

type yamlEnvironment struct {
	// Pointer so that an explicit empty path disables activation
	Path *string `yaml:"path"`
}

type yamlTool struct {
	Name   string   `yaml:"name"`
	Args   []string `yaml:"args"`
	Target *string  `yaml:"target"`
}

type yamlIntegrity struct {
	SHA256    string `yaml:"sha256"`
	Signature string `yaml:"signature"`
	Keyring   string `yaml:"keyring"`
}

// ConfigParser parses lintgate YAML files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML config file into a GateConfig entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.GateConfig, error) {
	//nolint:gosec // G304: filePath is the config path given by the caller
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	cfg, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// Parse parses YAML bytes on top of the default config. Unknown keys and
// additional documents are rejected, an empty document yields the defaults.
func (p *ConfigParser) Parse(data []byte) (*entities.GateConfig, error) {
	var raw yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err == nil {
		return nil, fmt.Errorf("failed to parse YAML: multiple documents are not supported")
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := entities.DefaultGateConfig()
	if raw.ProjectRoot != "" {
		cfg.ProjectRoot = raw.ProjectRoot
	}
	if raw.Environment.Path != nil {
		cfg.Environment.Path = *raw.Environment.Path
	}
	if raw.Tool.Name != "" {
		cfg.Tool.Name = raw.Tool.Name
	}
	if len(raw.Tool.Args) > 0 {
		cfg.Tool.Args = raw.Tool.Args
	}
	if raw.Tool.Target != nil {
		cfg.Tool.Target = *raw.Tool.Target
	}
	cfg.Integrity = entities.IntegrityConfig{
		SHA256:    raw.Integrity.SHA256,
		Signature: raw.Integrity.Signature,
		Keyring:   raw.Integrity.Keyring,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
