// Package testutil provides assertion helpers, token fixtures, and a
// scripted backend for tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// Backend is a scripted stand-in for the expense-tracker service. Tests
// register handlers per route and can assert on how many requests were
// actually made.
type Backend struct {
	*httptest.Server
	mux   *http.ServeMux
	calls atomic.Int64
}

// NewBackend starts a fake backend. It is shut down when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{mux: http.NewServeMux()}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.calls.Add(1)
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.Server.Close)
	return b
}

// Handle registers a handler for a route, e.g. "GET /budgets/getuserbudgets".
func (b *Backend) Handle(pattern string, handler http.HandlerFunc) {
	b.mux.HandleFunc(pattern, handler)
}

// Calls returns the number of requests the backend has received.
func (b *Backend) Calls() int64 {
	return b.calls.Load()
}
