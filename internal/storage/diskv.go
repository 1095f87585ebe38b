package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore persists the snapshot as a file in a base directory via
// diskv. This is the default backend.
type DiskvStore struct {
	d *diskv.Diskv
}

// NewDiskvStore opens (creating if needed) a diskv store rooted at
// basePath.
func NewDiskvStore(basePath string) (*DiskvStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &DiskvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, ".tmp"),
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// Load implements Port.
func (s *DiskvStore) Load() ([]byte, error) {
	if !s.d.Has(SlotName) {
		return nil, ErrSlotEmpty
	}
	data, err := s.d.Read(SlotName)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", SlotName, err)
	}
	return data, nil
}

// Save implements Port. diskv writes to a temp file and renames, so a
// crashed save never leaves a torn snapshot behind.
func (s *DiskvStore) Save(data []byte) error {
	if err := s.d.Write(SlotName, data); err != nil {
		return fmt.Errorf("storage: write %s: %w", SlotName, err)
	}
	return nil
}

// Close implements Port.
func (s *DiskvStore) Close() error { return nil }
