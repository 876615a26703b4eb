package session

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"bitstampgo/pkg/core"
	"bitstampgo/pkg/exchange/bitstamp"
	"bitstampgo/pkg/order"
)

// Balance fetches the account's BTC and USD balances and trading fee.
func (s *Session) Balance(ctx context.Context) (*core.Balance, error) {
	result, err := s.Do(ctx, core.OpAccountBalance, nil)
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeBalance(result)
}

// BuyLimitOrder places a limit order to buy amount BTC at price USD.
func (s *Session) BuyLimitOrder(ctx context.Context, amount, price *apd.Decimal) (*core.Order, error) {
	return s.limitOrder(ctx, core.OpBuyLimitOrder, amount, price)
}

// SellLimitOrder places a limit order to sell amount BTC at price USD.
func (s *Session) SellLimitOrder(ctx context.Context, amount, price *apd.Decimal) (*core.Order, error) {
	return s.limitOrder(ctx, core.OpSellLimitOrder, amount, price)
}

// PlaceLimitOrder places an order assembled with order.Builder.
func (s *Session) PlaceLimitOrder(ctx context.Context, lo *order.LimitOrder) (*core.Order, error) {
	return s.limitOrder(ctx, lo.Operation(), &lo.Amount, &lo.Price)
}

func (s *Session) limitOrder(ctx context.Context, op core.Operation, amount, price *apd.Decimal) (*core.Order, error) {
	result, err := s.Do(ctx, op, core.Params{
		"amount": amount,
		"price":  price,
	})
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeOrder(result)
}

// CancelOrder cancels the open order with the given id and reports whether
// the exchange confirmed it.
func (s *Session) CancelOrder(ctx context.Context, id string) (bool, error) {
	result, err := s.Do(ctx, core.OpCancelOrder, core.Params{"id": id})
	if err != nil {
		return false, err
	}
	return bitstamp.DecodeBool(result)
}

// OpenOrders lists the account's open orders.
func (s *Session) OpenOrders(ctx context.Context) ([]core.Order, error) {
	result, err := s.Do(ctx, core.OpOpenOrders, nil)
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeOrders(result)
}

// UserTransactions lists deposits, withdrawals and trades on the account.
// WithOffset, WithLimit and WithSort page through the history.
func (s *Session) UserTransactions(ctx context.Context, opts ...RequestOption) ([]core.UserTransaction, error) {
	result, err := s.Do(ctx, core.OpUserTransactions, ApplyRequestOptions(opts...).Params())
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeUserTransactions(result)
}

// WithdrawalRequests lists the account's withdrawal requests.
func (s *Session) WithdrawalRequests(ctx context.Context) ([]core.WithdrawalRequest, error) {
	result, err := s.Do(ctx, core.OpWithdrawalRequests, nil)
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeWithdrawalRequests(result)
}

// BitcoinWithdrawal sends amount BTC to address.
func (s *Session) BitcoinWithdrawal(ctx context.Context, amount *apd.Decimal, address string) (bool, error) {
	result, err := s.Do(ctx, core.OpBitcoinWithdrawal, core.Params{
		"amount":  amount,
		"address": address,
	})
	if err != nil {
		return false, err
	}
	return bitstamp.DecodeBool(result)
}

// RippleWithdrawal sends amount of currency to a ripple address.
func (s *Session) RippleWithdrawal(ctx context.Context, amount *apd.Decimal, address, currency string) (bool, error) {
	result, err := s.Do(ctx, core.OpRippleWithdrawal, core.Params{
		"amount":   amount,
		"address":  address,
		"currency": currency,
	})
	if err != nil {
		return false, err
	}
	return bitstamp.DecodeBool(result)
}

// BitcoinDepositAddress returns the account's bitcoin deposit address.
func (s *Session) BitcoinDepositAddress(ctx context.Context) (string, error) {
	result, err := s.Do(ctx, core.OpBitcoinDepositAddress, nil)
	if err != nil {
		return "", err
	}
	return bitstamp.DecodeAddress(result)
}

// RippleDepositAddress returns the account's ripple deposit address.
func (s *Session) RippleDepositAddress(ctx context.Context) (string, error) {
	result, err := s.Do(ctx, core.OpRippleDepositAddress, nil)
	if err != nil {
		return "", err
	}
	return bitstamp.DecodeAddress(result)
}

// UnconfirmedBitcoinDeposits lists bitcoin deposits still awaiting confirmations.
func (s *Session) UnconfirmedBitcoinDeposits(ctx context.Context) ([]core.UnconfirmedDeposit, error) {
	result, err := s.Do(ctx, core.OpUnconfirmedBitcoinDeposits, nil)
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeUnconfirmedDeposits(result)
}

// CheckCode reports the value of a Bitstamp code without redeeming it.
func (s *Session) CheckCode(ctx context.Context, code string) (*core.CodeValue, error) {
	return s.code(ctx, core.OpCheckCode, code)
}

// RedeemCode redeems a Bitstamp code into the account.
func (s *Session) RedeemCode(ctx context.Context, code string) (*core.CodeValue, error) {
	return s.code(ctx, core.OpRedeemCode, code)
}

func (s *Session) code(ctx context.Context, op core.Operation, code string) (*core.CodeValue, error) {
	result, err := s.Do(ctx, op, core.Params{"code": code})
	if err != nil {
		return nil, err
	}
	return bitstamp.DecodeCodeValue(result)
}
