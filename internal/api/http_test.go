package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func TestFetchProfile_SendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/user/me", r.URL.Path)
		w.Write([]byte(`{"username":"alice","email":"alice@example.org","bin":"4321"}`))
	})

	user, err := c.FetchProfile(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "alice@example.org", user.Email)
	assert.Equal(t, "4321", user.BIN)
}

func TestFetchProfile_UnauthorizedMapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.FetchProfile(context.Background(), "stale")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestFetchHistory_NonSuccessMapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.FetchHistory(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestFetchHistory_DecodesRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/history", r.URL.Path)
		w.Write([]byte(`[
			{"_id":"1","createdAt":"2024-01-05T10:00:00Z","type":"deposit","amount":100},
			{"_id":"2","createdAt":"2024-01-06T10:00:00Z","type":"withdraw","amount":"25.50"}
		]`))
	})

	recs, err := c.FetchHistory(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "deposit", recs[0].Type)
	assert.True(t, recs[1].Amount.Valid)
	assert.InDelta(t, 25.5, recs[1].Amount.Value, 1e-9)
}

func TestFetchExpensesByEmail_EncodesQuery(t *testing.T) {
	var gotEmail string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/expenses/byEmail", r.URL.Path)
		gotEmail = r.URL.Query().Get("email")
		w.Write([]byte(`[]`))
	})

	recs, err := c.FetchExpensesByEmail(context.Background(), "tok", "a+b@example.org")
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Equal(t, "a+b@example.org", gotEmail)
}

func TestGetJSON_TransportErrorIsUnavailable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := c.FetchProfile(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestGetJSON_MalformedBodyIsFetchFailed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := c.FetchHistory(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}
