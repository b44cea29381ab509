package artifact

import (
	"fmt"
	"sync"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
)

// MemoryStore is an in-memory artifact store for tests and ephemeral runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[models.NormalizeTicker(key)]
	return ok
}

func (s *MemoryStore) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[models.NormalizeTicker(key)] = cp
	return nil
}

func (s *MemoryStore) Read(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[models.NormalizeTicker(key)]
	if !ok {
		return nil, fmt.Errorf("artifact read %s: not found", key)
	}
	return data, nil
}

// Len returns the number of stored artifacts.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

var _ repository.ArtifactStore = (*MemoryStore)(nil)
