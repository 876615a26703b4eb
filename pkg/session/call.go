package session

import (
	"context"
	"fmt"
	"maps"

	"bitstampgo/pkg/core"
)

// Call is a single invocation of one operation. Parameters accumulate on it,
// first the signature fields from Sign and then the arguments given to Do.
// A Call runs at most once and must not be shared between goroutines.
type Call struct {
	session  *Session
	protocol core.Protocol
	op       core.Operation
	endpoint core.Endpoint
	params   core.Params
	err      error
	done     bool
}

// NewCall returns a fresh call for op. An operation the protocol does not
// know yields a call whose Do fails with core.ErrUnsupportedOperation.
func (s *Session) NewCall(op core.Operation) *Call {
	protocol := s.Protocol()
	c := &Call{
		session:  s,
		protocol: protocol,
		op:       op,
		params:   make(core.Params),
	}

	ep, ok := protocol.Endpoint(op)
	if !ok {
		c.err = fmt.Errorf("%w: %s", core.ErrUnsupportedOperation, op)
		return c
	}
	c.endpoint = ep
	return c
}

// Operation returns the operation this call invokes.
func (c *Call) Operation() core.Operation {
	return c.op
}

// Endpoint returns the registry row resolved for the call.
func (c *Call) Endpoint() core.Endpoint {
	return c.endpoint
}

// Params returns a copy of the parameters accumulated so far.
func (c *Call) Params() core.Params {
	return maps.Clone(c.params)
}

// Sign adds the key, signature and nonce fields computed from the given
// credentials. It returns the call for chaining.
func (c *Call) Sign(clientID, apiKey, apiSecret string) *Call {
	if c.err != nil {
		return c
	}

	maps.Copy(c.params, c.protocol.SignParams(core.Credentials{
		ClientID:  clientID,
		APIKey:    apiKey,
		SecretKey: apiSecret,
	}))
	return c
}

// Do merges params into the call, transmits it and returns the normalized
// response. A second Do on the same call fails with core.ErrCallConsumed.
func (c *Call) Do(ctx context.Context, params core.Params) (any, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.done {
		return nil, fmt.Errorf("%s: %w", c.op, core.ErrCallConsumed)
	}
	c.done = true

	maps.Copy(c.params, params)
	return c.session.execute(ctx, c)
}
