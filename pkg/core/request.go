package core

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Params holds request parameters keyed by wire name.
type Params map[string]any

// Request is a fully resolved HTTP request for one operation.
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Params      Params            `json:"params,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	RequireAuth bool              `json:"require_auth"`
}

func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Params:  make(Params),
		Headers: make(map[string]string),
	}
}

func (r *Request) SetParam(key string, value any) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	r.Params[key] = value
	return r
}

func (r *Request) SetParams(params Params) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	maps.Copy(r.Params, params)
	return r
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

func (r *Request) SetRequireAuth(require bool) *Request {
	r.RequireAuth = require
	return r
}

// Values renders the parameters as wire strings.
func (p Params) Values() map[string]string {
	result := make(map[string]string, len(p))
	for k, v := range p {
		result[k] = FormatParam(v)
	}
	return result
}

// FormatParam renders a single parameter value the way the exchange expects it.
func FormatParam(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case *apd.Decimal:
		return val.Text('f')
	case apd.Decimal:
		return val.Text('f')
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
