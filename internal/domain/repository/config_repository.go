package repository

import (
	"github.com/diillson/usage-statement-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	// LoadEnv reads STATEMENT_* variables, after loading envFile when given.
	LoadEnv(envFile string) (*types.Config, error)
}
