// Package transport provides the HTTP transport used to reach the exchange.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"bitstampgo/pkg/core"
)

// Client wraps a resty HTTP client with logging and configuration.
// It never retries; every call is a single round trip.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
	mu     sync.RWMutex
	closed bool
}

// Config holds the transport settings derived from core.Config.
type Config struct {
	BaseURL   string        `validate:"required,url"`
	Timeout   time.Duration `validate:"min=0"`
	UserAgent string
	Headers   map[string]string `validate:"omitempty"`
}

// Response represents an HTTP response with its status code, body, and headers.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Body contains the raw response body bytes.
	Body []byte

	// Headers contains the response headers as key-value pairs.
	Headers map[string]string
}

// NewClient creates a new HTTP client with the specified configuration.
// A zero Timeout keeps the underlying transport's default.
func NewClient(config *Config, logger zerolog.Logger) (*Client, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetRetryCount(0)
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}
	if config.UserAgent != "" {
		client.SetHeader("User-Agent", config.UserAgent)
	}
	for k, v := range config.Headers {
		client.SetHeader(k, v)
	}

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Do executes an HTTP request and returns the response.
// GET requests carry their parameters in the query string, POST requests in
// a form-encoded body.
func (c *Client) Do(ctx context.Context, req *core.Request) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.ErrSessionClosed
	}

	r := c.client.R().SetContext(ctx)

	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}

	var resp *resty.Response
	var err error

	switch req.Method {
	case http.MethodGet:
		if len(req.Params) > 0 {
			r.SetQueryParams(req.Params.Values())
		}
		resp, err = r.Get(req.Path)
	case http.MethodPost:
		r.SetFormData(req.Params.Values())
		resp, err = r.Post(req.Path)
	default:
		return nil, fmt.Errorf("unsupported http method: %s", req.Method)
	}

	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Int("size", len(resp.Bytes())).
		Msg("http response")

	headers := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
		Headers:    headers,
	}, nil
}

// Get performs an HTTP GET request to the specified path with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query core.Params) (*Response, error) {
	req := core.NewRequest(http.MethodGet, path)
	if query != nil {
		req.SetParams(query)
	}
	return c.Do(ctx, req)
}

// Post performs an HTTP POST request to the specified path with a form body.
func (c *Client) Post(ctx context.Context, path string, form core.Params) (*Response, error) {
	req := core.NewRequest(http.MethodPost, path)
	if form != nil {
		req.SetParams(form)
	}
	return c.Do(ctx, req)
}

// Close releases the underlying resty client. Further requests fail.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the response status code indicates an error (4xx or 5xx).
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// Unmarshal parses the response body into the provided value using sonic.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}
