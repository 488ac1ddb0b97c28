// Package client provides an HTTP implementation of domain.CalculatorService
// that talks to a calc server.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// path, status and the server's error message. A 422 response wraps
// domain.ErrOverflow and a 400 wraps domain.ErrInvalidOperand so callers can
// test for them with errors.Is.
package client
