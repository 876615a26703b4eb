package bitstamp

import (
	"net/http"

	"bitstampgo/pkg/core"
)

// endpoint is one registry row: the wire description of an operation and the
// coercion applied to its successful responses.
type endpoint struct {
	core.Endpoint
	normalize NormalizeFunc
}

func public(op core.Operation, path string, fn NormalizeFunc) endpoint {
	return endpoint{
		Endpoint:  core.Endpoint{Operation: op, Path: path, Method: http.MethodGet},
		normalize: fn,
	}
}

func private(op core.Operation, path string, fn NormalizeFunc) endpoint {
	return endpoint{
		Endpoint:  core.Endpoint{Operation: op, Path: path, Method: http.MethodPost, Private: true},
		normalize: fn,
	}
}

var (
	limitOrder = decimals("price", "amount").withInts("datetime")
	codeValue  = decimals("usd", "btc")
)

var registry = map[core.Operation]endpoint{
	core.OpAccountBalance: private(core.OpAccountBalance, "balance/", normalizeObject(decimals(
		"btc_reserved", "btc_available", "btc_balance",
		"usd_reserved", "usd_available", "usd_balance",
		"fee",
	))),
	core.OpBitcoinDepositAddress: private(core.OpBitcoinDepositAddress, "bitcoin_deposit_address/", normalizeOpaque),
	core.OpBuyLimitOrder:         private(core.OpBuyLimitOrder, "buy/", normalizeObject(limitOrder)),
	core.OpCancelOrder:           private(core.OpCancelOrder, "cancel_order/", normalizeBool),
	core.OpCheckCode:             private(core.OpCheckCode, "check_code/", normalizeObject(codeValue)),
	core.OpEURUSDConversionRate:  public(core.OpEURUSDConversionRate, "eur_usd/", normalizeObject(decimals("buy", "sell"))),
	core.OpOrderBook:             public(core.OpOrderBook, "order_book/", normalizeOrderBook),
	core.OpOpenOrders:            private(core.OpOpenOrders, "open_orders/", normalizeList(limitOrder)),
	core.OpRedeemCode:            private(core.OpRedeemCode, "redeem_code/", normalizeObject(codeValue)),
	core.OpRippleDepositAddress:  private(core.OpRippleDepositAddress, "ripple_address/", normalizeOpaque),
	core.OpRippleWithdrawal:      private(core.OpRippleWithdrawal, "ripple_withdrawal/", normalizeBool),
	core.OpSellLimitOrder:        private(core.OpSellLimitOrder, "sell/", normalizeObject(limitOrder)),
	core.OpTicker: public(core.OpTicker, "ticker/", normalizeObject(
		decimals("last", "high", "low", "volume", "bid", "ask").withInts("timestamp"),
	)),
	core.OpTransactions: public(core.OpTransactions, "transactions/", normalizeList(
		decimals("price", "amount").withInts("date"),
	)),
	core.OpUnconfirmedBitcoinDeposits: private(core.OpUnconfirmedBitcoinDeposits, "unconfirmed_btc/", normalizeObjectOrList(
		decimals("amount").withInts("confirmations"),
	)),
	core.OpUserTransactions: private(core.OpUserTransactions, "user_transactions/", normalizeList(
		decimals("usd", "btc", "fee").withInts("datetime"),
	)),
	core.OpBitcoinWithdrawal: private(core.OpBitcoinWithdrawal, "bitcoin_withdrawal/", normalizeBool),
	core.OpWithdrawalRequests: private(core.OpWithdrawalRequests, "withdrawal_requests/", normalizeList(
		decimals("amount").withInts("datetime"),
	)),
}

// Endpoints returns the registry rows in operation order.
func Endpoints() []core.Endpoint {
	out := make([]core.Endpoint, 0, len(registry))
	for _, op := range core.Operations() {
		if ep, ok := registry[op]; ok {
			out = append(out, ep.Endpoint)
		}
	}
	return out
}
