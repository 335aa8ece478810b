package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(serverURL, "test-token", 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestRevisionDate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/accounts/revision-date", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("1748736000000"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RevisionDate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1748736000000), got)
}

func TestRevisionDate_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RevisionDate(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRevisionDate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RevisionDate(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestRevisionDate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not a number"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RevisionDate(context.Background())

	require.Error(t, err)
}

func TestRevisionDate_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RevisionDate(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "blank", address: "   "},
		{name: "scheme only", address: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(tt.address, "token", time.Second, logger.Nop())
			require.Error(t, err)
		})
	}
}

func TestNewHTTPServerAdapter_AddsSchemeWhenMissing(t *testing.T) {
	a, err := NewHTTPServerAdapter("localhost:8080", "token", time.Second, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, a)
}
