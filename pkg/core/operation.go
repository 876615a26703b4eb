package core

import "fmt"

// Operation identifies one remote call exposed by the exchange API.
type Operation int

// Operation constants define every supported endpoint.
const (
	// OpAccountBalance retrieves reserved, available and total balances plus the fee tier.
	OpAccountBalance Operation = iota
	// OpBitcoinDepositAddress retrieves the account's bitcoin deposit address.
	OpBitcoinDepositAddress
	// OpBuyLimitOrder places a buy limit order.
	OpBuyLimitOrder
	// OpCancelOrder cancels an open order by id.
	OpCancelOrder
	// OpCheckCode looks up the value of a Bitstamp code without redeeming it.
	OpCheckCode
	// OpEURUSDConversionRate retrieves the EUR/USD buy and sell rates.
	OpEURUSDConversionRate
	// OpOrderBook retrieves the public order book.
	OpOrderBook
	// OpOpenOrders retrieves the account's open orders.
	OpOpenOrders
	// OpRedeemCode redeems a Bitstamp code into the account.
	OpRedeemCode
	// OpRippleDepositAddress retrieves the account's ripple deposit address.
	OpRippleDepositAddress
	// OpRippleWithdrawal withdraws funds to a ripple address.
	OpRippleWithdrawal
	// OpSellLimitOrder places a sell limit order.
	OpSellLimitOrder
	// OpTicker retrieves the public ticker.
	OpTicker
	// OpTransactions retrieves public trade history.
	OpTransactions
	// OpUnconfirmedBitcoinDeposits retrieves bitcoin deposits awaiting confirmation.
	OpUnconfirmedBitcoinDeposits
	// OpUserTransactions retrieves the account's transaction history.
	OpUserTransactions
	// OpBitcoinWithdrawal withdraws bitcoin to an external address.
	OpBitcoinWithdrawal
	// OpWithdrawalRequests retrieves the account's pending withdrawal requests.
	OpWithdrawalRequests

	operationCount
)

var operationNames = [...]string{
	"ACCOUNT_BALANCE",
	"BITCOIN_DEPOSIT_ADDRESS",
	"BUY_LIMIT_ORDER",
	"CANCEL_ORDER",
	"CHECK_CODE",
	"EUR_USD_CONVERSION_RATE",
	"ORDER_BOOK",
	"OPEN_ORDERS",
	"REDEEM_CODE",
	"RIPPLE_DEPOSIT_ADDRESS",
	"RIPPLE_WITHDRAWAL",
	"SELL_LIMIT_ORDER",
	"TICKER",
	"TRANSACTIONS",
	"UNCONFIRMED_BITCOIN_DEPOSITS",
	"USER_TRANSACTIONS",
	"BITCOIN_WITHDRAWAL",
	"WITHDRAWAL_REQUESTS",
}

// String returns the string representation of the operation.
func (o Operation) String() string {
	if o < 0 || o >= operationCount {
		return fmt.Sprintf("OPERATION(%d)", int(o))
	}
	return operationNames[o]
}

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	return o >= 0 && o < operationCount
}

// Operations returns every known operation in declaration order.
func Operations() []Operation {
	ops := make([]Operation, 0, operationCount)
	for o := Operation(0); o < operationCount; o++ {
		ops = append(ops, o)
	}
	return ops
}

// ParseOperation resolves an operation from its String form.
// Matching is exact; the CLI lower-cases and upper-cases as needed.
func ParseOperation(name string) (Operation, error) {
	for i, n := range operationNames {
		if n == name {
			return Operation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperation, name)
}
