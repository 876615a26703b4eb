// Package order builds validated limit orders for the buy and sell endpoints.
package order

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"bitstampgo/pkg/core"
)

// LimitOrder is a validated limit order ready to be placed.
type LimitOrder struct {
	Side   core.OrderSide
	Amount apd.Decimal
	Price  apd.Decimal
}

// Operation returns the buy or sell operation matching the order side.
func (o *LimitOrder) Operation() core.Operation {
	if o.Side == core.SideSell {
		return core.OpSellLimitOrder
	}
	return core.OpBuyLimitOrder
}

// Params returns the amount and price request parameters.
func (o *LimitOrder) Params() core.Params {
	return core.Params{
		"amount": &o.Amount,
		"price":  &o.Price,
	}
}

// Builder provides a fluent interface for constructing limit orders.
// It accumulates the first parse error and reports it on Build.
//
// Example:
//
//	lo, err := order.NewBuilder().
//	    Buy().
//	    Amount("0.5").
//	    Price("600.00").
//	    Build()
type Builder struct {
	order *LimitOrder
	err   error
}

// NewBuilder creates a builder for a buy order with no amount or price.
func NewBuilder() *Builder {
	return &Builder{order: &LimitOrder{Side: core.SideBuy}}
}

// Side sets the order side.
func (b *Builder) Side(side core.OrderSide) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Side = side
	return b
}

// Buy sets the order side to buy.
func (b *Builder) Buy() *Builder {
	return b.Side(core.SideBuy)
}

// Sell sets the order side to sell.
func (b *Builder) Sell() *Builder {
	return b.Side(core.SideSell)
}

// Price sets the USD limit price from a string representation.
func (b *Builder) Price(price string) *Builder {
	if b.err != nil {
		return b
	}
	if _, _, err := b.order.Price.SetString(price); err != nil {
		b.err = fmt.Errorf("parse price: %w", err)
	}
	return b
}

// PriceDecimal sets the USD limit price.
func (b *Builder) PriceDecimal(price *apd.Decimal) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Price.Set(price)
	return b
}

// Amount sets the BTC amount from a string representation.
func (b *Builder) Amount(amount string) *Builder {
	if b.err != nil {
		return b
	}
	if _, _, err := b.order.Amount.SetString(amount); err != nil {
		b.err = fmt.Errorf("parse amount: %w", err)
	}
	return b
}

// AmountDecimal sets the BTC amount.
func (b *Builder) AmountDecimal(amount *apd.Decimal) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Amount.Set(amount)
	return b
}

// Build validates and returns the constructed order.
func (b *Builder) Build() (*LimitOrder, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := validate(b.order); err != nil {
		return nil, err
	}

	return b.order, nil
}

func validate(o *LimitOrder) error {
	if o.Amount.IsZero() || o.Amount.Negative {
		return fmt.Errorf("amount must be positive")
	}

	if o.Price.IsZero() || o.Price.Negative {
		return fmt.Errorf("price must be positive")
	}

	if o.Amount.Form != apd.Finite || o.Price.Form != apd.Finite {
		return fmt.Errorf("amount and price must be finite")
	}

	if o.Side != core.SideBuy && o.Side != core.SideSell {
		return fmt.Errorf("invalid order side")
	}

	return nil
}
