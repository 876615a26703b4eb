package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "https://www.bitstamp.net/api/", config.BaseURL)
	assert.Equal(t, time.Duration(0), config.Timeout)
	assert.Equal(t, NonceUnix, config.NonceMode)
	assert.Nil(t, config.Credentials)
	assert.Equal(t, "info", config.LogLevel)
	assert.NoError(t, config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid_config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "missing_base_url",
			config:  &Config{NonceMode: NonceUnix},
			wantErr: true,
			errMsg:  "BaseURL",
		},
		{
			name:    "invalid_base_url",
			config:  &Config{BaseURL: "not a url", NonceMode: NonceUnix},
			wantErr: true,
			errMsg:  "BaseURL",
		},
		{
			name:    "negative_timeout",
			config:  DefaultConfig().WithTimeout(-time.Second),
			wantErr: true,
			errMsg:  "Timeout",
		},
		{
			name:    "unknown_nonce_mode",
			config:  DefaultConfig().WithNonceMode("nanos"),
			wantErr: true,
			errMsg:  "NonceMode",
		},
		{
			name: "invalid_log_level",
			config: &Config{
				BaseURL:   DefaultBaseURL,
				NonceMode: NonceCounter,
				LogLevel:  "trace",
			},
			wantErr: true,
			errMsg:  "LogLevel",
		},
		{
			name:    "incomplete_credentials",
			config:  DefaultConfig().WithCredentials(&Credentials{APIKey: "abc"}),
			wantErr: true,
			errMsg:  "ClientID",
		},
		{
			name: "complete_credentials",
			config: DefaultConfig().WithCredentials(&Credentials{
				ClientID:  "123",
				APIKey:    "abc",
				SecretKey: "s3cr3t",
			}),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.errMsg), "expected error to contain %q, got %q", tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_WithCredentials(t *testing.T) {
	config := DefaultConfig()
	creds := &Credentials{
		ClientID:  "123",
		APIKey:    "test-key",
		SecretKey: "test-secret",
	}

	result := config.WithCredentials(creds)

	assert.Equal(t, config, result)
	assert.Equal(t, creds, config.Credentials)
}

func TestConfig_WithBaseURL(t *testing.T) {
	config := DefaultConfig()
	result := config.WithBaseURL("http://127.0.0.1:8080/api/")

	assert.Equal(t, config, result)
	assert.Equal(t, "http://127.0.0.1:8080/api/", config.BaseURL)
}

func TestConfig_WithTimeout(t *testing.T) {
	config := DefaultConfig()
	result := config.WithTimeout(30 * time.Second)

	assert.Equal(t, config, result)
	assert.Equal(t, 30*time.Second, config.Timeout)
}

func TestConfig_WithNonceMode(t *testing.T) {
	config := DefaultConfig()
	result := config.WithNonceMode(NonceCounter)

	assert.Equal(t, config, result)
	assert.Equal(t, NonceCounter, config.NonceMode)
}
