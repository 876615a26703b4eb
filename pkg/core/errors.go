package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents the category of an API error.
type ErrorType int

// Error type constants categorize exchange-reported failures.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeAuthentication indicates a rejected key, signature or nonce.
	ErrorTypeAuthentication
	// ErrorTypeBadRequest indicates invalid request parameters.
	ErrorTypeBadRequest
	// ErrorTypeNotFound indicates the referenced order or code does not exist.
	ErrorTypeNotFound
	// ErrorTypeInsufficientFunds indicates the account lacks required balance.
	ErrorTypeInsufficientFunds
	// ErrorTypeRateLimit indicates the exchange throttled the caller.
	ErrorTypeRateLimit
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"AUTHENTICATION",
		"BAD_REQUEST",
		"NOT_FOUND",
		"INSUFFICIENT_FUNDS",
		"RATE_LIMIT",
	}[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrNoCredentials is returned when a private accessor runs without configured credentials.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrCallConsumed is returned when a call descriptor is invoked a second time.
	ErrCallConsumed = errors.New("call already executed")
	// ErrCoercion is returned when a response field cannot be converted to its typed form.
	ErrCoercion = errors.New("field coercion failed")
	// ErrUnsupportedOperation is returned for operations missing from the endpoint registry.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrSessionClosed is returned when attempting to use a closed session.
	ErrSessionClosed = errors.New("session is closed")
)

// APIError is a failure reported by the exchange inside a well-formed response.
type APIError struct {
	// Operation is the call that produced the error.
	Operation Operation `json:"operation"`
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// Message is the flattened, human-readable error text.
	Message string `json:"message"`
	// Payload is the value of the response's error field as decoded.
	Payload any `json:"payload,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bitstamp %s: %s", e.Operation, e.Message)
}

// NewAPIError builds an APIError from the decoded value of an error field.
func NewAPIError(op Operation, payload any) *APIError {
	msg := ErrorMessage(payload)
	return &APIError{
		Operation: op,
		Type:      classifyMessage(msg),
		Message:   msg,
		Payload:   payload,
	}
}

// ErrorMessage flattens an error payload into a single line. Strings pass
// through unchanged; field maps become "field: msg; field: msg" in key order.
func ErrorMessage(payload any) string {
	switch v := payload.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, ErrorMessage(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			msg := ErrorMessage(v[k])
			if k == "__all__" {
				parts = append(parts, msg)
				continue
			}
			parts = append(parts, k+": "+msg)
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func classifyMessage(msg string) ErrorType {
	m := strings.ToLower(msg)
	switch {
	case strings.Contains(m, "nonce"),
		strings.Contains(m, "signature"),
		strings.Contains(m, "api key"),
		strings.Contains(m, "permission"):
		return ErrorTypeAuthentication
	case strings.Contains(m, "balance"),
		strings.Contains(m, "insufficient"):
		return ErrorTypeInsufficientFunds
	case strings.Contains(m, "not found"),
		strings.Contains(m, "invalid order id"):
		return ErrorTypeNotFound
	case strings.Contains(m, "too many requests"):
		return ErrorTypeRateLimit
	case strings.Contains(m, "required"),
		strings.Contains(m, "invalid"),
		strings.Contains(m, "ensure"):
		return ErrorTypeBadRequest
	default:
		return ErrorTypeUnknown
	}
}

// HTTPError reports a non-2xx response that did not carry an error envelope.
type HTTPError struct {
	Operation  Operation `json:"operation"`
	StatusCode int       `json:"status_code"`
	Body       string    `json:"body"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("bitstamp %s: http status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// IsAPIError returns true if err is, or wraps, an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsAuthenticationError returns true if the exchange rejected the call's credentials.
// Authentication errors require credential or nonce fixes and are not retryable.
func IsAuthenticationError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeAuthentication
	}
	return false
}

// IsInsufficientFundsError returns true if the exchange reported a balance shortfall.
func IsInsufficientFundsError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeInsufficientFunds
	}
	return false
}
