package yaml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/lintgate/internal/domain/entities"
)

// DefaultConfigFile is looked up in the search directory when no path is given
const DefaultConfigFile = "lintgate.yml"

// ConfigRepository implements repositories.ConfigRepository using YAML files
type ConfigRepository struct {
	searchDir string
	parser    *ConfigParser
}

// NewConfigRepository creates a repository discovering lintgate.yml in searchDir
func NewConfigRepository(searchDir string) *ConfigRepository {
	return &ConfigRepository{
		searchDir: searchDir,
		parser:    NewConfigParser(),
	}
}

// Load parses path, or the discovered default file when path is empty.
// Relative file references in the config are resolved against the
// directory holding the config file.
func (r *ConfigRepository) Load(_ context.Context, path string) (*entities.GateConfig, error) {
	if path == "" {
		candidate := filepath.Join(r.searchDir, DefaultConfigFile)
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			return entities.DefaultGateConfig(), nil
		}
		path = candidate
	} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config not found: %s", path)
	}

	cfg, err := r.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for _, field := range []*string{&cfg.ProjectRoot, &cfg.Integrity.Signature, &cfg.Integrity.Keyring} {
		if *field, err = resolve(base, *field); err != nil {
			return nil, err
		}
	}
	// environment.path stays relative to the project root
	if cfg.Environment.Path, err = expandHome(cfg.Environment.Path); err != nil {
		return nil, err
	}

	return cfg, nil
}

func resolve(base, p string) (string, error) {
	p, err := expandHome(p)
	if err != nil {
		return "", err
	}
	if p == "" || filepath.IsAbs(p) {
		return p, nil
	}
	return filepath.Join(base, p), nil
}

// expandHome replaces a leading "~" or "~/" with the user's home directory.
// Other "~name" forms are left alone.
func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", p, err)
	}
	return filepath.Join(home, p[1:]), nil
}
