package store

import (
	"sync"

	"calc/internal/domain"
)

// MemoryHistoryStore keeps the history in memory. State is lost on exit.
type MemoryHistoryStore struct {
	mu         sync.RWMutex
	entries    []domain.Entry
	maxEntries int
}

// NewMemoryHistoryStore returns an empty store bounded to maxEntries (0 = unbounded).
func NewMemoryHistoryStore(maxEntries int) *MemoryHistoryStore {
	return &MemoryHistoryStore{maxEntries: maxEntries}
}

func (s *MemoryHistoryStore) Append(entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		s.entries = append([]domain.Entry(nil), s.entries[len(s.entries)-s.maxEntries:]...)
	}
	return nil
}

func (s *MemoryHistoryStore) List(limit int) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return tail(s.entries, limit), nil
}

func (s *MemoryHistoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}

var _ domain.HistoryStore = (*MemoryHistoryStore)(nil)
