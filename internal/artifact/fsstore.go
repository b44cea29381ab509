// Package artifact provides model artifact stores keyed by ticker symbol.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
)

// FSStore persists one artifact file per ticker under a directory.
type FSStore struct {
	dir string
}

// NewFSStore creates the directory if needed and returns a store over it.
func NewFSStore(dir string) (*FSStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("artifact store: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("artifact store: create dir: %w", err)
	}
	return &FSStore{dir: dir}, nil
}

// Exists reports whether an artifact is persisted for the key.
func (s *FSStore) Exists(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

// Write persists the artifact, replacing any previous one. The write goes
// through a temp file and rename so readers never observe a partial file.
func (s *FSStore) Write(key string, data []byte) error {
	dst := s.path(key)
	tmp, err := os.CreateTemp(s.dir, ".artifact-*")
	if err != nil {
		return fmt.Errorf("artifact write: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("artifact write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("artifact write: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("artifact write: %w", err)
	}
	return nil
}

// Read loads the persisted artifact for the key.
func (s *FSStore) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("artifact read %s: %w", key, err)
	}
	return data, nil
}

// path maps a key to its file, stripping anything that could escape the
// artifact directory. Yahoo symbols may carry '^', '.', '-' and '='.
func (s *FSStore) path(key string) string {
	key = models.NormalizeTicker(key)
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '^', r == '.', r == '-', r == '=':
			b.WriteRune(r)
		}
	}
	return filepath.Join(s.dir, b.String()+".json")
}

var _ repository.ArtifactStore = (*FSStore)(nil)
