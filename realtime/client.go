// Package realtime exchanges the server held API key for a short lived session
// token of the real-time voice API. Browsers use the token for their WebRTC
// handshake and never see the key.
package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// BetaHeader is required by the sessions endpoint for WebRTC offers.
const BetaHeader = "realtime=v1"

type httpClient interface {
	Do(*http.Request) (*http.Response, error)
}

// UpstreamError is returned when the sessions endpoint answers with a non 2xx
// status. The body is kept verbatim so it can be relayed.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("realtime: upstream returned %d: %s", e.StatusCode, e.Body)
}

// Session is the part of the upstream response the browser needs.
type Session struct {
	ClientSecret json.RawMessage `json:"client_secret"`
	Model        string          `json:"model"`
}

// Client creates sessions.
type Client struct {
	APIKey       string
	SessionsURL  string
	DefaultModel string
	Voice        string
	Instructions string

	http httpClient
}

// NewClient returns a client with a bounded request timeout.
func NewClient(apiKey, sessionsURL string, timeout time.Duration) *Client {
	return &Client{
		APIKey:      apiKey,
		SessionsURL: sessionsURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

type sessionRequest struct {
	Model        string `json:"model"`
	Voice        string `json:"voice,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// CreateSession asks upstream for a new session. An empty model uses the
// client's default.
func (c *Client) CreateSession(ctx context.Context, model string) (*Session, error) {
	if model == "" {
		model = c.DefaultModel
	}
	body, err := json.Marshal(sessionRequest{
		Model:        model,
		Voice:        c.Voice,
		Instructions: c.Instructions,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.SessionsURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "unable to build session request")
	}
	req = req.WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("OpenAI-Beta", BetaHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "session request failed")
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			log.WithError(cErr).Warn("unable to close session response body")
		}
	}()

	data, err := ioutil.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "unable to read session response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: data}
	}

	if !gjson.ValidBytes(data) {
		return nil, errors.New("realtime: session response is not json")
	}
	secret := gjson.GetBytes(data, "client_secret")
	if !secret.Exists() {
		return nil, errors.New("realtime: session response has no client_secret")
	}

	log.WithFields(log.Fields{
		"model":     model,
		"expiresAt": gjson.GetBytes(data, "client_secret.expires_at").Int(),
	}).Info("realtime session created")

	return &Session{
		ClientSecret: json.RawMessage(secret.Raw),
		Model:        model,
	}, nil
}
