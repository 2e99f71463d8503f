// Package client is a typed Go client for the Blue Penguin REST API.
//
// A Client carries at most one Session. Authenticated calls fail locally with
// auctionerrors.ErrSessionExpired once the session is older than the session TTL,
// and any 401 from the server drops the session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

// DefaultSessionTTL matches the server's default session lifetime
const DefaultSessionTTL = 2 * time.Hour

// Session is the signed-in state of a client
type Session struct {
	Token     string               `json:"token"`
	AccountID string               `json:"account_id"`
	ProfileID string               `json:"profile_id"`
	Status    models.AccountStatus `json:"status"`
	IssuedAt  time.Time            `json:"issued_at"`
}

// Expired reports whether the session is older than ttl at now
func (s Session) Expired(now time.Time, ttl time.Duration) bool {
	return !now.Before(s.IssuedAt.Add(ttl))
}

// Clock is the time source used for session expiry
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Client calls the Blue Penguin REST API. It is safe for concurrent use;
// the session is shared by all calls made through the same Client.
type Client struct {
	baseURL string
	http    *http.Client
	clock   Clock
	ttl     time.Duration

	mu      sync.Mutex
	session *Session
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock sets the time source used for session expiry
func WithClock(clock Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// WithSessionTTL overrides DefaultSessionTTL
func WithSessionTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// New returns a client for the API rooted at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		clock:   systemClock{},
		ttl:     DefaultSessionTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the current session, if any
func (c *Client) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// SetSession installs a session obtained elsewhere, e.g. restored from disk
func (c *Client) SetSession(s Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = &s
}

// ClearSession forgets the current session without contacting the server
func (c *Client) ClearSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
}

// token returns the live session token or the reason there is none
func (c *Client) token() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return "", fmt.Errorf("client: %w", auctionerrors.ErrUnauthenticated)
	}
	if c.session.Expired(c.clock.Now(), c.ttl) {
		c.session = nil
		return "", fmt.Errorf("client: %w", auctionerrors.ErrSessionExpired)
	}
	return c.session.Token, nil
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// call sends one request and decodes the envelope data into out (which may be nil)
func (c *Client) call(ctx context.Context, method, path string, authed bool, body, out any) error {
	var token string
	if authed {
		var err error
		if token, err = c.token(); err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: read %s %s (status %d): %w", method, path, resp.StatusCode, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		if resp.StatusCode == http.StatusUnauthorized {
			c.ClearSession()
		}
		if decodeErr != nil || env.Message == "" {
			// not an API envelope, e.g. a plain-text router 404 or 405
			return &APIError{
				Status:  resp.StatusCode,
				Message: http.StatusText(resp.StatusCode),
				Detail:  strings.TrimSpace(string(raw)),
				err:     sentinelFor(resp.StatusCode, ""),
			}
		}
		return &APIError{
			Status:  resp.StatusCode,
			Message: env.Message,
			Detail:  env.Error,
			err:     sentinelFor(resp.StatusCode, env.Message),
		}
	}
	if decodeErr != nil {
		return fmt.Errorf("client: decode %s %s (status %d): %w", method, path, resp.StatusCode, decodeErr)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("client: decode %s %s data: %w", method, path, err)
	}
	return nil
}

func encodeQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// IsRedirectClass reports errors after which a browser would send the user elsewhere:
// to the sign-in page or to a not-found page
func IsRedirectClass(err error) bool {
	return errors.Is(err, auctionerrors.ErrUnauthenticated) || errors.Is(err, auctionerrors.ErrNotFound)
}
