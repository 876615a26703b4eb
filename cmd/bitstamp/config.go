package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"bitstampgo/pkg/core"
)

// overrides carries command-line values that take precedence over the file.
type overrides struct {
	BaseURL   string
	ClientID  string
	APIKey    string
	APISecret string
	LogLevel  string
	NonceMode string
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (*core.Config, error) {
	cfg := core.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("config must contain a single YAML document")
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (o overrides) apply(cfg *core.Config) {
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.NonceMode != "" {
		cfg.NonceMode = o.NonceMode
	}

	if o.ClientID == "" && o.APIKey == "" && o.APISecret == "" {
		return
	}
	creds := core.Credentials{}
	if cfg.Credentials != nil {
		creds = *cfg.Credentials
	}
	if o.ClientID != "" {
		creds.ClientID = o.ClientID
	}
	if o.APIKey != "" {
		creds.APIKey = o.APIKey
	}
	if o.APISecret != "" {
		creds.SecretKey = o.APISecret
	}
	cfg.Credentials = &creds
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
