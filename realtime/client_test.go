package realtime

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	c := NewClient("sk-secret", url, time.Second)
	c.DefaultModel = "default-model"
	c.Voice = "verse"
	c.Instructions = "be brief"
	return c
}

func TestCreateSession(t *testing.T) {
	var got sessionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer sk-secret", r.Header.Get("Authorization"))
		require.Equal(t, BetaHeader, r.Header.Get("OpenAI-Beta"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		data, err := ioutil.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &got))
		_, err = w.Write([]byte(`{"id":"sess_1","client_secret":{"value":"ek_123","expires_at":1700000000}}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	s, err := newTestClient(srv.URL).CreateSession(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "default-model", s.Model)
	require.JSONEq(t, `{"value":"ek_123","expires_at":1700000000}`, string(s.ClientSecret))
	require.Equal(t, sessionRequest{Model: "default-model", Voice: "verse", Instructions: "be brief"}, got)
}

func TestCreateSessionRequestedModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "other-model", req.Model)
		_, _ = w.Write([]byte(`{"client_secret":{"value":"ek_9"}}`))
	}))
	defer srv.Close()

	s, err := newTestClient(srv.URL).CreateSession(context.Background(), "other-model")
	require.NoError(t, err)
	require.Equal(t, "other-model", s.Model)
}

func TestCreateSessionUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateSession(context.Background(), "")
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	require.Equal(t, `{"error":{"message":"bad key"}}`, string(upstream.Body))
}

func TestCreateSessionMissingSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"sess_1"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateSession(context.Background(), "")
	require.Error(t, err)
}

func TestCreateSessionNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateSession(context.Background(), "")
	require.Error(t, err)
}

func TestCreateSessionUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).CreateSession(context.Background(), "")
	require.Error(t, err)
	var upstream *UpstreamError
	require.False(t, errors.As(err, &upstream))
}
