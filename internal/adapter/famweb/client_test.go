package famweb_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/raws-data-etl/internal/adapter/famweb"
)

func TestFetchRequestsYearRange(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"stn": q.Get("stn"),
			"byy": q.Get("byy"),
			"eyy": q.Get("eyy"),
		}
		w.Write([]byte("W13 records")) //nolint:errcheck
	}))
	defer srv.Close()

	c := famweb.NewClient(srv.URL, 5*time.Second, slog.New(slog.DiscardHandler))

	blob, err := c.Fetch(context.Background(), "451702", 2005, 2022)
	require.NoError(t, err)

	assert.Equal(t, "W13 records", blob)
	assert.Equal(t, "451702", gotQuery["stn"])
	assert.Equal(t, "2005", gotQuery["byy"])
	assert.Equal(t, "2022", gotQuery["eyy"])
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := famweb.NewClient(srv.URL, 5*time.Second, slog.New(slog.DiscardHandler))

	_, err := c.Fetch(context.Background(), "451702", 2005, 2022)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
