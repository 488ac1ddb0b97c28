package interfaces

import domaintypes "calc/internal/domain/types"

// HistoryStore persists computed entries in order of arrival.
type HistoryStore interface {
	Append(entry domaintypes.Entry) error
	// List returns the newest limit entries, oldest first. limit <= 0 means all.
	List(limit int) ([]domaintypes.Entry, error)
	Clear() error
}
