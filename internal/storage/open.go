package storage

import (
	"fmt"

	"github.com/replykit/replykit/internal/config"
)

// Open returns the Port selected by the configuration.
func Open(cfg *config.Config) (Port, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.StoragePath)
	case config.BackendDiskv:
		return NewDiskvStore(cfg.StoragePath)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
	}
}
