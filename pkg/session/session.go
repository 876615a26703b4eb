package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"bitstampgo/internal/transport"
	"bitstampgo/pkg/core"
	"bitstampgo/pkg/exchange/bitstamp"
)

// State represents the lifecycle state of a Session.
type State int

const (
	// StateNew indicates a session that has not completed a call yet.
	StateNew State = iota
	// StateActive indicates a session that has reached the exchange at least once.
	StateActive
	// StateClosed indicates a session that has been shut down and can no longer be used.
	StateClosed
)

// String returns the string representation of the State.
func (s State) String() string {
	return [...]string{"NEW", "ACTIVE", "CLOSED"}[s]
}

// Session holds the transport, protocol and credentials shared by calls.
// Sessions are safe for concurrent use; the Calls they create are not.
type Session struct {
	mu        sync.RWMutex
	config    *core.Config
	protocol  core.Protocol
	transport *transport.Client
	logger    zerolog.Logger
	state     State
	createdAt time.Time
	lastUsed  time.Time
}

// Option configures a Session at construction.
type Option func(*Session)

// WithLogger sets the logger used by the session and its transport.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithProtocol replaces the default Bitstamp protocol.
func WithProtocol(protocol core.Protocol) Option {
	return func(s *Session) {
		if protocol != nil {
			s.protocol = protocol
		}
	}
}

// New creates a new Session with the provided configuration.
// The configuration is validated before the session is created.
// Returns an error if the configuration is nil or invalid.
func New(config *core.Config, opts ...Option) (*Session, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	now := time.Now()
	s := &Session{
		config: config,
		protocol: bitstamp.NewProtocol(
			bitstamp.WithNonceSource(bitstamp.NonceSourceFor(config.NonceMode)),
		),
		logger:    zerolog.Nop(),
		state:     StateNew,
		createdAt: now,
		lastUsed:  now,
	}
	for _, opt := range opts {
		opt(s)
	}

	client, err := transport.NewClient(&transport.Config{
		BaseURL:   config.BaseURL,
		Timeout:   config.Timeout,
		UserAgent: config.UserAgent,
	}, s.logger)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}
	s.transport = client

	return s, nil
}

// SetProtocol replaces the exchange protocol. Calls created earlier keep the
// protocol they were created with.
func (s *Session) SetProtocol(protocol core.Protocol) error {
	if protocol == nil {
		return fmt.Errorf("protocol is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.protocol = protocol
	return nil
}

// Do runs a single operation: it creates a call, signs it with the session
// credentials when the endpoint is private, and invokes it with params.
func (s *Session) Do(ctx context.Context, op core.Operation, params core.Params) (any, error) {
	call := s.NewCall(op)
	if call.err != nil {
		return nil, call.err
	}

	if call.endpoint.Private {
		creds := s.Credentials()
		if creds == nil {
			return nil, fmt.Errorf("%s: %w", op, core.ErrNoCredentials)
		}
		call.Sign(creds.ClientID, creds.APIKey, creds.SecretKey)
	}

	return call.Do(ctx, params)
}

// execute transmits a call's request and parses the response. It runs once
// per Call.
func (s *Session) execute(ctx context.Context, c *Call) (any, error) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return nil, core.ErrSessionClosed
	}
	s.lastUsed = time.Now()
	s.mu.Unlock()

	req, err := c.protocol.BuildRequest(c.op, c.params)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.op, err)
	}

	s.mu.Lock()
	if s.state == StateNew {
		s.state = StateActive
	}
	s.mu.Unlock()

	result, err := c.protocol.ParseResponse(c.op, resp.StatusCode, resp.Body)
	if err != nil {
		var apiErr *core.APIError
		if errors.As(err, &apiErr) {
			s.logger.Warn().
				Str("operation", c.op.String()).
				Str("error_type", apiErr.Type.String()).
				Str("message", apiErr.Message).
				Msg("exchange rejected call")
		}
		return nil, err
	}

	return result, nil
}

// Close shuts down the session and its transport. It is safe to call more
// than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	return s.transport.Close()
}

// State returns the current lifecycle state of the session.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Protocol returns the exchange protocol used for new calls.
func (s *Session) Protocol() core.Protocol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.protocol
}

// Config returns the configuration used to create the session.
func (s *Session) Config() *core.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// CreatedAt returns the timestamp when the session was created.
func (s *Session) CreatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.createdAt
}

// LastUsed returns the timestamp of the last call started by the session.
func (s *Session) LastUsed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUsed
}

// Credentials returns the credentials used by Do for private operations.
func (s *Session) Credentials() *core.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Credentials
}

// SetCredentials updates the API credentials used for private operations.
func (s *Session) SetCredentials(creds *core.Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config.Credentials = creds
}
