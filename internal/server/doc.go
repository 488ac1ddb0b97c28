// Package server exposes the calculator over JSON/HTTP.
//
// HTTP API
//
//	POST /add  {"a": 1, "b": 3, "integer": false}
//	    Compute a + b and return the recorded Entry. With "integer" set the
//	    operands must be whole numbers and the checked int64 path is used;
//	    an out-of-range sum yields 422.
//
//	GET /history?limit=N
//	    Return up to N of the most recent entries, oldest first. A missing or
//	    non-positive limit returns everything.
//
//	DELETE /history
//	    Drop all recorded entries.
//
//	GET /healthz
//	    Liveness probe.
//
// Non-2xx responses carry {"error": "..."}. Every request is access-logged with
// method, path, remote, status, bytes and duration.
package server
