package core

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the root of the exchange's v1 REST API.
const DefaultBaseURL = "https://www.bitstamp.net/api/"

// Nonce modes accepted by Config.NonceMode.
const (
	// NonceUnix emits the current Unix time in seconds.
	NonceUnix = "unix"
	// NonceCounter emits a strictly increasing counter seeded from Unix seconds.
	NonceCounter = "counter"
)

// Credentials holds API authentication credentials for the exchange.
type Credentials struct {
	// ClientID is the numeric customer id shown in the account settings.
	ClientID string `json:"client_id" yaml:"client_id" validate:"required"`
	// APIKey is the public API key identifier.
	APIKey string `json:"api_key" yaml:"api_key" validate:"required"`
	// SecretKey is the private key used for signing requests.
	SecretKey string `json:"-" yaml:"secret_key" validate:"required"`
}

// Config contains the options for a session.
type Config struct {
	BaseURL   string `json:"base_url" yaml:"base_url" validate:"required,url"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent"`

	// Timeout bounds each HTTP request. Zero leaves the transport default in place.
	Timeout time.Duration `json:"timeout" yaml:"timeout" validate:"min=0"`

	NonceMode   string       `json:"nonce_mode" yaml:"nonce_mode" validate:"oneof=unix counter"`
	Credentials *Credentials `json:"credentials,omitempty" yaml:"credentials"`

	LogLevel string `json:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config pointing at the production API with unix
// nonces, no request timeout override and info logging.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		NonceMode: NonceUnix,
		LogLevel:  "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithBaseURL overrides the API root and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithNonceMode selects the nonce source and returns the config for chaining.
func (c *Config) WithNonceMode(mode string) *Config {
	c.NonceMode = mode
	return c
}
