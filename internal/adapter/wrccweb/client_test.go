package wrccweb_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/raws-data-etl/internal/adapter/wrccweb"
)

func TestFetchPostsStationForm(t *testing.T) {
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"stn":   r.PostFormValue("stn"),
			"smon":  r.PostFormValue("smon"),
			"syea":  r.PostFormValue("syea"),
			"eyea":  r.PostFormValue("eyea"),
			"units": r.PostFormValue("units"),
		}
		w.Write([]byte("station export body")) //nolint:errcheck
	}))
	defer srv.Close()

	c := wrccweb.NewClient(srv.URL, 5*time.Second, slog.New(slog.DiscardHandler))
	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 4, 15, 0, 0, 0, 0, time.UTC)

	blob, err := c.Fetch(context.Background(), "waWENU", start, end)
	require.NoError(t, err)

	assert.Equal(t, "station export body", blob)
	assert.Equal(t, "waWENU", gotForm["stn"])
	assert.Equal(t, "03", gotForm["smon"])
	assert.Equal(t, "21", gotForm["syea"])
	assert.Equal(t, "22", gotForm["eyea"])
	assert.Equal(t, "m", gotForm["units"], "metric units are always requested")
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "station unknown", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := wrccweb.NewClient(srv.URL, 5*time.Second, slog.New(slog.DiscardHandler))

	_, err := c.Fetch(context.Background(), "waWENU", time.Now(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := wrccweb.NewClient(srv.URL, 5*time.Second, slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Fetch(ctx, "waWENU", time.Now(), time.Now())
	assert.Error(t, err)
}
