// Package store provides persistence for the calculator history.
//
// HistoryFileStore serialises entries as JSON under the configured home
// directory, optionally sealed with a passphrase (scrypt + ChaCha20-Poly1305).
// MemoryHistoryStore keeps entries in memory for the HTTP server. All methods
// are concurrency-safe via internal locking.
package store
