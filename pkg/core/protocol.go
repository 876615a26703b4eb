package core

// Endpoint describes one remote operation: where it lives, how it is sent and
// whether it needs a signature.
type Endpoint struct {
	Operation Operation `json:"operation"`
	Path      string    `json:"path"`
	Method    string    `json:"method"`
	Private   bool      `json:"private"`
}

// Protocol defines the exchange-specific half of the call lifecycle.
// The session owns transmission; the protocol owns everything that depends
// on the exchange's wire format.
type Protocol interface {
	// Name returns the exchange identifier.
	Name() string

	// Endpoint returns the registry row for op.
	Endpoint(op Operation) (Endpoint, bool)

	// SupportedOperations returns the operations present in the registry.
	SupportedOperations() []Operation

	// BuildRequest resolves op and its accumulated parameters into a Request.
	BuildRequest(op Operation, params Params) (*Request, error)

	// SignParams returns the authentication fields for a private call.
	SignParams(creds Credentials) Params

	// ParseResponse decodes the body, reports exchange and HTTP errors and
	// returns the normalized result. Normalization runs only when no error is
	// reported.
	ParseResponse(op Operation, statusCode int, body []byte) (any, error)
}
