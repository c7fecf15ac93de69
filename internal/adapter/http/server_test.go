package http_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/couchcryptid/raws-data-etl/internal/adapter/http"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(context.Context) error {
	return m.err
}

func newTestServer(ready *mockReadiness) *httpadapter.Server {
	return httpadapter.NewServer(":0", ready, slog.New(slog.DiscardHandler))
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(&mockReadiness{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(&mockReadiness{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(&mockReadiness{err: errors.New("no station has been loaded yet")})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"waiting","reason":"no station has been loaded yet"}`,
		rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&mockReadiness{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
