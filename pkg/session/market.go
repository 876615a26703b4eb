package session

import (
	"context"

	"bitstampgo/pkg/core"
	"bitstampgo/pkg/exchange/bitstamp"
)

// Ticker fetches the last-24-hours market summary.
func (s *Session) Ticker(ctx context.Context) (*core.Ticker, error) {
	result, err := s.Do(ctx, core.OpTicker, nil)
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeTicker(result)
}

// OrderBook fetches the current bids and asks, best price first.
// WithGroup controls whether orders at the same price are merged.
func (s *Session) OrderBook(ctx context.Context, opts ...RequestOption) (*core.OrderBook, error) {
	result, err := s.Do(ctx, core.OpOrderBook, ApplyRequestOptions(opts...).Params())
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeOrderBook(result)
}

// Transactions fetches public trades, newest first.
// WithTimeWindow selects the minute, hour (default) or day window.
func (s *Session) Transactions(ctx context.Context, opts ...RequestOption) ([]core.Transaction, error) {
	result, err := s.Do(ctx, core.OpTransactions, ApplyRequestOptions(opts...).Params())
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeTransactions(result)
}

// EURUSDConversionRate fetches the buy and sell EUR/USD rates.
func (s *Session) EURUSDConversionRate(ctx context.Context) (*core.ConversionRate, error) {
	result, err := s.Do(ctx, core.OpEURUSDConversionRate, nil)
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeConversionRate(result)
}
