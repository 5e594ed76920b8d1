package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/readaloudhq/readaloud"
	rahttp "github.com/readaloudhq/readaloud/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_State(t *testing.T) {
	t.Parallel()

	t.Run("returns the page body and URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		source := rahttp.NewSource(server.URL, rahttp.WithPollRate(100))
		defer source.Close()

		state, err := source.State(context.Background())
		require.NoError(t, err)
		assert.Equal(t, server.URL, state.URL)
		assert.Equal(t, "<html><body>Hello World</body></html>", state.HTML)
		assert.False(t, state.FetchedAt.IsZero())
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		source := rahttp.NewSource(server.URL,
			rahttp.WithTimeout(10*time.Millisecond),
			rahttp.WithPollRate(100))
		defer source.Close()

		_, err := source.State(context.Background())
		require.Error(t, err)
	})

	t.Run("returns EUNAVAILABLE on non-200 status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		source := rahttp.NewSource(server.URL, rahttp.WithPollRate(100))
		defer source.Close()

		_, err := source.State(context.Background())
		require.Error(t, err)
		assert.Equal(t, readaloud.EUNAVAILABLE, readaloud.ErrorCode(err))
	})

	t.Run("rate limits successive requests", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		source := rahttp.NewSource(server.URL, rahttp.WithPollRate(20))
		defer source.Close()

		begin := time.Now()
		for range 3 {
			_, err := source.State(context.Background())
			require.NoError(t, err)
		}

		// 20 rps with burst 1: three requests need at least ~100ms
		assert.GreaterOrEqual(t, time.Since(begin), 90*time.Millisecond)
	})

	t.Run("honors context cancellation while waiting", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		source := rahttp.NewSource(server.URL, rahttp.WithPollRate(0.01))
		defer source.Close()

		// First request consumes the burst token
		_, err := source.State(context.Background())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = source.State(ctx)
		require.Error(t, err)
	})
}
