package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"calc/internal/domain"
)

const (
	historyFile          = "history.json"
	encryptedHistoryFile = "history.json.enc"
)

// HistoryFileStore persists the computation history to disk.
//
// With an empty passphrase entries are stored as plain JSON; otherwise the
// whole list is sealed into a single encrypted blob.
type HistoryFileStore struct {
	dir        string
	passphrase string
	maxEntries int
	kdf        kdfParams
	mu         sync.Mutex
}

// NewHistoryFileStore returns a HistoryFileStore rooted at dir. maxEntries
// bounds the stored history, dropping the oldest first; 0 keeps everything.
func NewHistoryFileStore(dir, passphrase string, maxEntries int) *HistoryFileStore {
	return &HistoryFileStore{
		dir:        dir,
		passphrase: passphrase,
		maxEntries: maxEntries,
		kdf:        defaultKDFParams(),
	}
}

// Path returns the file the store reads and writes.
func (s *HistoryFileStore) Path() string {
	if s.passphrase != "" {
		return filepath.Join(s.dir, encryptedHistoryFile)
	}
	return filepath.Join(s.dir, historyFile)
}

// Append adds entry to the end of the history.
func (s *HistoryFileStore) Append(entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if s.maxEntries > 0 && len(entries) > s.maxEntries {
		entries = entries[len(entries)-s.maxEntries:]
	}
	return s.save(entries)
}

// List returns the newest limit entries, oldest first.
func (s *HistoryFileStore) List(limit int) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	return tail(entries, limit), nil
}

// Clear removes the history file.
func (s *HistoryFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return removeFile(s.Path())
}

func (s *HistoryFileStore) load() ([]domain.Entry, error) {
	var entries []domain.Entry
	if s.passphrase == "" {
		if err := readJSON(s.Path(), &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	b, err := readFile(s.Path())
	if err != nil || b == nil {
		return nil, err
	}
	raw, err := open(s.passphrase, b)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *HistoryFileStore) save(entries []domain.Entry) error {
	if s.passphrase == "" {
		return writeJSON(s.Path(), entries, 0o600)
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	b, err := seal(s.passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.Path(), b, 0o600)
}

// tail returns a copy of the last limit entries; limit <= 0 means all.
func tail(entries []domain.Entry, limit int) []domain.Entry {
	if limit > 0 && limit < len(entries) {
		entries = entries[len(entries)-limit:]
	}
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	return out
}

// Compile-time assertion that HistoryFileStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*HistoryFileStore)(nil)
