package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/homebase-labs/homebase-core/internal/logger"
)

// Config holds client configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.homebase.app/v1".
	BaseURL string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// RequestsPerSecond throttles outgoing calls proactively.
	// Zero means DefaultRate.
	RequestsPerSecond float64
	// Tokens supplies bearer tokens for authenticated calls.
	// Nil limits the client to login and signup.
	Tokens oauth2.TokenSource
}

const (
	// DefaultTimeout is the transport default; there is no per-call
	// override.
	DefaultTimeout = 30 * time.Second
	// DefaultRate is the proactive request throttle.
	DefaultRate = 10.0
)

// Client talks to the Homebase backend.
type Client struct {
	baseURL string
	hc      *http.Client
	tokens  oauth2.TokenSource
	limiter *rate.Limiter
}

// New creates a client for the given backend.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRate
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  cfg.Tokens,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// requestOption adjusts a single request.
type requestOption func(*requestSettings)

type requestSettings struct {
	noAuth      bool
	bearer      string
	extraHeader map[string]string
}

// withoutAuth skips the Authorization header (login, signup).
func withoutAuth() requestOption {
	return func(s *requestSettings) { s.noAuth = true }
}

// withBearer attaches an explicit token instead of the token source.
// Token validation checks a stored token that may differ from the
// session's current one.
func withBearer(token string) requestOption {
	return func(s *requestSettings) { s.bearer = token }
}

// withHeader attaches one extra header.
func withHeader(key, value string) requestOption {
	return func(s *requestSettings) {
		if s.extraHeader == nil {
			s.extraHeader = make(map[string]string)
		}
		s.extraHeader[key] = value
	}
}

// do performs one JSON request against the backend. A non-2xx response
// becomes *Error; a 2xx body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...requestOption) error {
	var settings requestSettings
	for _, opt := range opts {
		opt(&settings)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range settings.extraHeader {
		req.Header.Set(key, value)
	}

	if !settings.noAuth {
		token := settings.bearer
		if token == "" && c.tokens != nil {
			t, err := c.tokens.Token()
			if err != nil {
				return fmt.Errorf("fetching bearer token: %w", err)
			}
			token = t.AccessToken
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger.Debug("api: %s %s", method, path)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Body:   strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
