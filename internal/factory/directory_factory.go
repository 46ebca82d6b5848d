package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opsdesk/bec-engine/internal/adapters/directory"
	"github.com/opsdesk/bec-engine/internal/config"
	"github.com/opsdesk/bec-engine/internal/core"
	"go.uber.org/zap"
)

// DirectoryFactory creates known-contacts directories based on configuration
type DirectoryFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewDirectoryFactory creates a new directory factory
func NewDirectoryFactory(cfg *config.Config, logger *zap.Logger) *DirectoryFactory {
	return &DirectoryFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateContactDirectory creates a contact directory based on the configuration
func (f *DirectoryFactory) CreateContactDirectory() (core.ContactDirectory, error) {
	dirCfg := f.cfg.GetDirectory()

	switch dirCfg.Type {
	case "memory":
		return directory.NewMemoryDirectory(dirCfg.Contacts, f.logger), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(dirCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return directory.NewSQLiteDirectory(dirCfg.SQLitePath, f.logger)
	case "mysql":
		return directory.NewMySQLDirectory(dirCfg.MySQLDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported directory type: %s", dirCfg.Type)
	}
}
