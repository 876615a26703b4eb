package session

import (
	"bitstampgo/pkg/core"
)

// Time windows accepted by the transactions endpoint.
const (
	WindowMinute = "minute"
	WindowHour   = "hour"
	WindowDay    = "day"
)

// Sort orders accepted by the user transactions endpoint.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// RequestOption adjusts the optional parameters of a typed accessor.
type RequestOption func(*RequestOptions)

// RequestOptions collects the optional query parameters of the market and
// history endpoints. Zero values are not sent.
type RequestOptions struct {
	Group      *bool
	TimeWindow string
	Offset     int
	Limit      int
	Sort       string
}

// WithGroup toggles price-level grouping on the order book.
func WithGroup(group bool) RequestOption {
	return func(o *RequestOptions) {
		o.Group = &group
	}
}

// WithTimeWindow limits public transactions to the last minute, hour or day.
func WithTimeWindow(window string) RequestOption {
	return func(o *RequestOptions) {
		o.TimeWindow = window
	}
}

// WithOffset skips that many user transactions.
func WithOffset(offset int) RequestOption {
	return func(o *RequestOptions) {
		o.Offset = offset
	}
}

// WithLimit caps the number of user transactions returned.
func WithLimit(limit int) RequestOption {
	return func(o *RequestOptions) {
		o.Limit = limit
	}
}

// WithSort orders user transactions by date.
func WithSort(sort string) RequestOption {
	return func(o *RequestOptions) {
		o.Sort = sort
	}
}

// ApplyRequestOptions folds opts into a RequestOptions value.
func ApplyRequestOptions(opts ...RequestOption) *RequestOptions {
	o := &RequestOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Params renders the set options as request parameters.
func (o *RequestOptions) Params() core.Params {
	params := make(core.Params)
	if o.Group != nil {
		if *o.Group {
			params["group"] = 1
		} else {
			params["group"] = 0
		}
	}
	if o.TimeWindow != "" {
		params["time"] = o.TimeWindow
	}
	if o.Offset > 0 {
		params["offset"] = o.Offset
	}
	if o.Limit > 0 {
		params["limit"] = o.Limit
	}
	if o.Sort != "" {
		params["sort"] = o.Sort
	}
	return params
}
