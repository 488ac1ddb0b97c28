package server_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"calc/internal/services/arith"
	"calc/internal/server"
	"calc/internal/store"
)

func newHandler() http.Handler {
	svc := arith.New(store.NewMemoryHistoryStore(0), nil)
	return server.New("", svc, nil).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAdd_OK(t *testing.T) {
	h := newHandler()

	rec := do(t, h, http.MethodPost, "/add", `{"a":1,"b":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":4`)
}

func TestAdd_Errors(t *testing.T) {
	h := newHandler()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{"a":`, http.StatusBadRequest},
		{"missing operand", `{"a":1}`, http.StatusBadRequest},
		{"non-numeric", `{"a":"x","b":1}`, http.StatusBadRequest},
		{"fractional integer", `{"a":1.5,"b":1,"integer":true}`, http.StatusBadRequest},
		{"overflow", `{"a":9223372036854775807,"b":1,"integer":true}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/add", tc.body)
			assert.Equal(t, tc.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHistory_ListAndClear(t *testing.T) {
	h := newHandler()

	rec := do(t, h, http.MethodGet, "/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	do(t, h, http.MethodPost, "/add", `{"a":1,"b":1}`)
	do(t, h, http.MethodPost, "/add", `{"a":2,"b":2,"integer":true}`)

	rec = do(t, h, http.MethodGet, "/history?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":4`)
	assert.NotContains(t, rec.Body.String(), `"result":2`)

	rec = do(t, h, http.MethodGet, "/history?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/history", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/history", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	rec := do(t, newHandler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := server.New("", arith.New(store.NewMemoryHistoryStore(0), nil), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	hc := &http.Client{Timeout: 2 * time.Second, Transport: &http.Transport{}}
	resp, err := hc.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	hc.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestAdd_InfiniteSumKeepsHistoryReadable(t *testing.T) {
	h := newHandler()

	rec := do(t, h, http.MethodPost, "/add", `{"a":1e308,"b":1e308}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":"+Inf"`)

	rec = do(t, h, http.MethodPost, "/add", `{"a":1,"b":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":"+Inf"`)
	assert.Contains(t, rec.Body.String(), `"result":4`)
}
