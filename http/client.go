package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"unicode/utf8"

	"github.com/bellande/limit"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Interface compliance check.
var _ limit.Provider = (*Client)(nil)

// Client implements [limit.Provider] over HTTPS.
type Client struct {
	authKey    string
	endpoint   string
	httpClient *nethttp.Client
	newID      func() string
}

// Option configures a [Client].
type Option func(*Client)

// WithEndpoint sets the URL requests are posted to. Useful for testing with
// httptest and for non-public deployments.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *nethttp.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a [Client] that authorizes with authKey.
func New(authKey string, opts ...Option) *Client {
	c := &Client{
		authKey:    authKey,
		endpoint:   DefaultEndpoint,
		httpClient: nethttp.DefaultClient,
		newID:      uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Submit posts the payload for p and returns the JSON response body. Every
// failure is a *limit.NetworkError; there is no retry.
func (c *Client) Submit(ctx context.Context, p limit.Params) (limit.Result, error) {
	body, err := json.Marshal(limit.NewPayload(p, c.authKey))
	if err != nil {
		return limit.Result{}, fmt.Errorf("http: encode payload: %w", err)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return limit.Result{}, fmt.Errorf("http: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, c.newID())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return limit.Result{}, &limit.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return limit.Result{}, &limit.NetworkError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("read body: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return limit.Result{}, &limit.NetworkError{
			StatusCode: resp.StatusCode,
			Body:       truncateBody(data),
		}
	}
	if !gjson.ValidBytes(data) {
		return limit.Result{}, &limit.NetworkError{
			StatusCode: resp.StatusCode,
			Body:       truncateBody(data),
			Err:        errInvalidJSON,
		}
	}

	return limit.Result{Format: limit.FormatJSON, Data: data}, nil
}

var errInvalidJSON = errors.New("response is not valid JSON")

// truncateBody keeps at most maxErrorBody bytes of b without splitting a
// UTF-8 sequence.
func truncateBody(b []byte) string {
	if len(b) <= maxErrorBody {
		return string(b)
	}
	n := maxErrorBody
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return string(b[:n]) + "..."
}
