// Package arith performs additions and records them in the history.
//
// The arithmetic itself is delegated to calculator.Calculator; this layer adds
// identifiers, timestamps, persistence via domain.HistoryStore and logging.
package arith
