package bitstamp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"bitstampgo/pkg/core"
)

// Sign returns the uppercase hex HMAC-SHA256 of nonce+clientID+apiKey keyed
// with apiSecret.
func Sign(nonce, clientID, apiKey, apiSecret string) string {
	h := hmac.New(sha256.New, []byte(apiSecret))
	h.Write([]byte(nonce + clientID + apiKey))
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
}

// AuthParams returns the key, signature and nonce fields for a private call.
func AuthParams(nonce string, creds core.Credentials) core.Params {
	return core.Params{
		"key":       creds.APIKey,
		"signature": Sign(nonce, creds.ClientID, creds.APIKey, creds.SecretKey),
		"nonce":     nonce,
	}
}
