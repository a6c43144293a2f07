package geonames

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_SearchByCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/postalCodeSearchJSON", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Berlin", q.Get("placename"))
		assert.Equal(t, "DE", q.Get("country"))
		assert.Equal(t, "5", q.Get("maxRows"))
		assert.Equal(t, "workplace", q.Get("username"))

		_, _ = io.WriteString(w, `{"postalCodes": [
			{"postalCode": "10115", "placeName": "Berlin", "countryCode": "DE", "adminName1": "Berlin", "adminCode1": "BE", "lat": 52.5323, "lng": 13.3846}
		]}`)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(testLogger(), "workplace", WithBaseURL(srv.URL), WithMaxRows(5))
	resp, err := client.SearchByCity(context.Background(), "de", "Berlin")
	require.NoError(t, err)
	require.Len(t, resp.PostalCodes, 1)
	assert.Equal(t, "10115", resp.PostalCodes[0].PostalCode)
	assert.InDelta(t, 52.5323, resp.PostalCodes[0].Lat, 1e-9)
}

func TestClient_LookupPostalCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10115", r.URL.Query().Get("postalcode"))
		_, _ = io.WriteString(w, `{"postalCodes": [{"postalCode": "10115", "placeName": "Berlin", "countryCode": "DE"}]}`)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(testLogger(), "workplace", WithBaseURL(srv.URL))
	resp, err := client.LookupPostalCode(context.Background(), "DE", "10115")
	require.NoError(t, err)
	assert.Equal(t, "Berlin", resp.PostalCodes[0].PlaceName)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		errContains string
	}{
		{name: "no results", status: http.StatusOK, body: `{"postalCodes": []}`, wantErr: ErrNotFound},
		{name: "rejected", status: http.StatusOK, body: `{"status": {"message": "user account not enabled", "value": 10}}`, errContains: "user account not enabled"},
		{name: "server error", status: http.StatusServiceUnavailable, body: "busy", errContains: "status 503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			t.Cleanup(srv.Close)

			client := NewClient(testLogger(), "workplace", WithBaseURL(srv.URL))
			_, err := client.SearchByCity(context.Background(), "DE", "Berlin")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "error = %v, want %v", err, tt.wantErr)
				return
			}
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestClient_MissingUsername(t *testing.T) {
	client := NewClient(testLogger(), "")
	_, err := client.SearchByCity(context.Background(), "DE", "Berlin")
	assert.ErrorIs(t, err, ErrMissingUsername)
}
