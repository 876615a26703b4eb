package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitstampgo/pkg/core"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(&Config{BaseURL: baseURL}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(&Config{BaseURL: core.DefaultBaseURL}, zerolog.Nop())

	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{"missing_base_url", &Config{}},
		{"bad_base_url", &Config{BaseURL: "::nope"}},
		{"negative_timeout", &Config{BaseURL: core.DefaultBaseURL, Timeout: -time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config, zerolog.Nop())
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/transactions/", r.URL.Path)
		assert.Equal(t, "hour", r.URL.Query().Get("time"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/api/")

	resp, err := client.Get(context.Background(), "transactions/", core.Params{"time": "hour"})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, `[]`, string(resp.Body))
	assert.True(t, resp.IsSuccess())
	assert.False(t, resp.IsError())
}

func TestClient_Post_FormBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/cancel_order/", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "42", r.PostForm.Get("id"))
		assert.Empty(t, r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`"true"`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/api/")

	resp, err := client.Post(context.Background(), "cancel_order/", core.Params{"id": 42})

	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, `"true"`, string(resp.Body))
}

func TestClient_Do_UnsupportedMethod(t *testing.T) {
	client := newTestClient(t, core.DefaultBaseURL)

	_, err := client.Do(context.Background(), core.NewRequest("DELETE", "ticker/"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported http method")
}

func TestClient_Do_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bitstampgo-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "yes", r.Header.Get("X-Custom-Header"))
		w.Header().Set("X-Served-By", "test")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(&Config{
		BaseURL:   server.URL,
		UserAgent: "bitstampgo-test",
	}, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	req := core.NewRequest(http.MethodGet, "ticker/").SetHeader("X-Custom-Header", "yes")
	resp, err := client.Do(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "test", resp.Headers["X-Served-By"])
}

func TestClient_Do_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "ticker/", nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "http request")
}

func TestClient_Close(t *testing.T) {
	client, err := NewClient(&Config{BaseURL: core.DefaultBaseURL}, zerolog.Nop())
	require.NoError(t, err)

	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close())

	_, err = client.Get(context.Background(), "ticker/", nil)
	assert.True(t, errors.Is(err, core.ErrSessionClosed))
}

func TestResponse_Unmarshal(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body:       []byte(`{"last":"100.5","timestamp":"1380000000"}`),
	}

	var result struct {
		Last      string `json:"last"`
		Timestamp string `json:"timestamp"`
	}

	err := resp.Unmarshal(&result)

	assert.NoError(t, err)
	assert.Equal(t, "100.5", result.Last)
	assert.Equal(t, "1380000000", result.Timestamp)
}

func TestResponse_IsSuccess(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   bool
	}{
		{"200 OK", 200, true},
		{"204 No Content", 204, true},
		{"301 Redirect", 301, false},
		{"400 Bad Request", 400, false},
		{"500 Server Error", 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{StatusCode: tt.statusCode}
			assert.Equal(t, tt.expected, resp.IsSuccess())
		})
	}
}

func TestResponse_IsError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   bool
	}{
		{"200 OK", 200, false},
		{"400 Bad Request", 400, true},
		{"404 Not Found", 404, true},
		{"500 Server Error", 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{StatusCode: tt.statusCode}
			assert.Equal(t, tt.expected, resp.IsError())
		})
	}
}
