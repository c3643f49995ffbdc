// Package upstream talks to the platform backend's admin REST surface. Every
// response arrives in one typed envelope; anything else is a DecodeError
// rather than a best-effort guess at the payload shape.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/feastly/admin-console/internal/auth"
)

// Sentinel errors for the failure modes pages care about.
var (
	// ErrMissingToken means no admin credential is configured. The console
	// never substitutes fixtures for this; demo mode is a config choice.
	ErrMissingToken = errors.New("upstream: admin token not configured")
	// ErrUnauthorized means the backend rejected the credential. The token
	// source is cleared when this is returned.
	ErrUnauthorized = errors.New("upstream: unauthorized")
)

// UnavailableError wraps network failures and non-2xx statuses. Pages surface
// it with a retry affordance.
type UnavailableError struct {
	Status int
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream: backend returned %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("upstream: backend unreachable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// DecodeError means the response body did not match the envelope contract.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("upstream: invalid data format received from server: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Config configures the backend client.
type Config struct {
	BaseURL    string
	Tokens     auth.TokenSource
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

// Client talks to the platform backend's admin endpoints.
type Client struct {
	baseURL string
	tokens  auth.TokenSource
	client  *http.Client
	log     *logrus.Logger
}

// NewClient builds a client capable of hitting the live backend.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("upstream: base url is required")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("upstream: token source is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		tokens:  cfg.Tokens,
		client:  httpClient,
		log:     log,
	}, nil
}

// envelope is the single response shape the backend speaks.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, target any) error {
	token, ok := c.tokens.Token()
	if !ok {
		return ErrMissingToken
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("upstream: encode payload: %w", err)
		}
		body.Reset(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, &body)
	if err != nil {
		return fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Clear()
		c.log.WithField("path", path).Warn("admin token rejected, credential cleared")
		return ErrUnauthorized
	}
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return &UnavailableError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", buf.String()),
		}
	}
	if target == nil {
		return nil
	}

	var env envelope
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&env); err != nil {
		return &DecodeError{Err: err}
	}
	if !env.Success {
		return &UnavailableError{Status: resp.StatusCode, Err: fmt.Errorf("%s", env.Error)}
	}
	if len(env.Data) == 0 {
		return &DecodeError{Err: fmt.Errorf("envelope has no data field")}
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, target)
}

func (c *Client) post(ctx context.Context, path string, payload, target any) error {
	return c.do(ctx, http.MethodPost, path, nil, payload, target)
}

func (c *Client) put(ctx context.Context, path string, payload, target any) error {
	return c.do(ctx, http.MethodPut, path, nil, payload, target)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
