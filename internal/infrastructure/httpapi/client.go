// Package httpapi is the authenticated HTTP adapter for the ACTIFY backend.
// It implements every client port over the documented JSON API. Requests
// are built per call, reading the bearer token from the session store each
// time rather than holding it in a shared default header. There are no
// retries or timeouts: a failed request surfaces immediately and callers
// bound calls with their context.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Client speaks to one backend base URL on behalf of the current session.
type Client struct {
	baseURL string
	http    *http.Client
	session ports.SessionStore
	logger  zerolog.Logger
}

func New(baseURL string, session ports.SessionStore, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: session,
		logger:  logger,
	}
}

// newRequest builds one request with the ambient headers: Accept, a fresh
// X-Request-ID, and the bearer token when a session is held.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if sess := c.session.Current(); sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	return req, nil
}

// do executes the request, decodes a 2xx JSON body into out (out may be
// nil), and maps everything else onto the domain error taxonomy.
func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_id", req.Header.Get("X-Request-ID")).
			Msg("request failed")
		return fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path string, values url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// post issues a bodyless POST, for toggle/ack endpoints.
func (c *Client) post(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

var _ ports.AuthClient = (*Client)(nil)
var _ ports.UserClient = (*Client)(nil)
var _ ports.GroupClient = (*Client)(nil)
var _ ports.ActivityClient = (*Client)(nil)
var _ ports.SubmissionClient = (*Client)(nil)
var _ ports.NotificationClient = (*Client)(nil)
var _ ports.ChallengeClient = (*Client)(nil)
var _ ports.LeaderboardClient = (*Client)(nil)
