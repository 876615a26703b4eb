package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitstampgo/pkg/core"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"bitstamp", "--no-color"}, args...))
	return out.String(), err
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"amount=0.5", "price=600.00", "address=a=b"})

	require.NoError(t, err)
	assert.Equal(t, core.Params{"amount": "0.5", "price": "600.00", "address": "a=b"}, params)

	_, err = parseParams([]string{"amount"})
	assert.Error(t, err)

	_, err = parseParams([]string{"=1"})
	assert.Error(t, err)
}

func TestOpsCommand(t *testing.T) {
	out, err := runApp(t, "ops")

	require.NoError(t, err)
	assert.Contains(t, out, "ACCOUNT_BALANCE")
	assert.Contains(t, out, "order_book/")
	assert.Contains(t, out, "WITHDRAWAL_REQUESTS")
	assert.Contains(t, out, "private")
}

func TestCallCommand_Public(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/", r.URL.Path)
		assert.Equal(t, "hour", r.URL.Query().Get("time"))
		w.Write([]byte(`[{"date":"1393632000","tid":1,"price":"600.00","amount":"0.00000001"}]`))
	}))
	defer server.Close()

	out, err := runApp(t, "--base-url", server.URL+"/api/", "--log-level", "error", "call", "transactions", "time=hour")

	require.NoError(t, err)
	assert.Contains(t, out, `"amount": "0.00000001"`)
	assert.Contains(t, out, `"date": 1393632000`)
}

func TestCallCommand_PrivateUsesFlagCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "abc", r.PostForm.Get("key"))
		assert.Len(t, r.PostForm.Get("signature"), 64)
		w.Write([]byte(`"true"`))
	}))
	defer server.Close()

	out, err := runApp(t,
		"--base-url", server.URL+"/api/", "--log-level", "error",
		"--client-id", "123", "--key", "abc", "--secret", "s3cr3t",
		"call", "CANCEL_ORDER", "id=42",
	)

	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestCallCommand_Errors(t *testing.T) {
	_, err := runApp(t, "call", "NOT_AN_OP")
	assert.ErrorIs(t, err, core.ErrUnsupportedOperation)

	_, err = runApp(t, "call", "ACCOUNT_BALANCE")
	assert.ErrorIs(t, err, core.ErrNoCredentials)

	_, err = runApp(t, "call", "TICKER", "bogus")
	assert.Error(t, err)
}
