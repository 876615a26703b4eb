package bitstamp

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"

	"bitstampgo/pkg/core"
)

// Name is the exchange identifier reported by Protocol.Name.
const Name = "bitstamp"

// decoder keeps numbers as json.Number so decimals are never routed through float64.
var decoder = sonic.Config{UseNumber: true}.Froze()

// Protocol implements the core.Protocol interface for Bitstamp.
// It resolves operations against the endpoint registry, signs private calls and
// normalizes responses.
type Protocol struct {
	nonce NonceSource
}

// ProtocolOption configures a Protocol.
type ProtocolOption func(*Protocol)

// WithNonceSource replaces the default Unix-seconds nonce source.
func WithNonceSource(src NonceSource) ProtocolOption {
	return func(p *Protocol) {
		p.nonce = src
	}
}

// NewProtocol creates a new Bitstamp protocol instance.
func NewProtocol(opts ...ProtocolOption) *Protocol {
	p := &Protocol{nonce: NewUnixNonce()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the protocol identifier "bitstamp".
func (p *Protocol) Name() string {
	return Name
}

// Endpoint returns the registry row for op.
func (p *Protocol) Endpoint(op core.Operation) (core.Endpoint, bool) {
	ep, ok := registry[op]
	return ep.Endpoint, ok
}

// SupportedOperations returns the list of operations supported by this protocol.
func (p *Protocol) SupportedOperations() []core.Operation {
	ops := make([]core.Operation, 0, len(registry))
	for _, ep := range Endpoints() {
		ops = append(ops, ep.Operation)
	}
	return ops
}

// BuildRequest constructs the HTTP request for op carrying params unchanged.
func (p *Protocol) BuildRequest(op core.Operation, params core.Params) (*core.Request, error) {
	ep, ok := registry[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedOperation, op)
	}

	req := core.NewRequest(ep.Method, ep.Path)
	req.SetParams(params)
	req.SetRequireAuth(ep.Private)

	return req, nil
}

// SignParams returns the key, signature and nonce fields for creds using the
// next nonce from the protocol's source.
func (p *Protocol) SignParams(creds core.Credentials) core.Params {
	return AuthParams(p.nonce.Next(), creds)
}

// ParseResponse decodes body and returns the normalized result for op.
//
// An object carrying an "error" key becomes a *core.APIError regardless of the
// HTTP status. Other non-2xx responses become a *core.HTTPError. List-shaped
// bodies are never inspected for an error.
func (p *Protocol) ParseResponse(op core.Operation, statusCode int, body []byte) (any, error) {
	ep, ok := registry[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedOperation, op)
	}

	var raw any
	if err := decoder.Unmarshal(body, &raw); err != nil {
		if statusCode >= http.StatusBadRequest {
			return nil, &core.HTTPError{Operation: op, StatusCode: statusCode, Body: string(body)}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if obj, ok := raw.(map[string]any); ok {
		if payload, exists := obj["error"]; exists {
			return nil, core.NewAPIError(op, payload)
		}
	}

	if statusCode >= http.StatusBadRequest {
		return nil, &core.HTTPError{Operation: op, StatusCode: statusCode, Body: string(body)}
	}

	result, err := ep.normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", op, err)
	}

	return result, nil
}
