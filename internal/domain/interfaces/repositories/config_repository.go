// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/lintgate/internal/domain/entities"
)

// ConfigRepository defines the interface for loading gate configuration
type ConfigRepository interface {
	// Load returns the config at path, or the default config when path is
	// empty and no config file is discovered.
	Load(ctx context.Context, path string) (*entities.GateConfig, error)
}
