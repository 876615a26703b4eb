package core

import (
	"time"

	"github.com/cockroachdb/apd/v3"
)

// OrderSide represents the direction of an order (buy or sell).
// The exchange encodes it as 0 for buy and 1 for sell.
type OrderSide int

// Order side constants define the direction of a trade.
const (
	// SideBuy indicates an order to purchase bitcoin.
	SideBuy OrderSide = iota
	// SideSell indicates an order to sell bitcoin.
	SideSell
)

// String returns the string representation of the order side ("BUY" or "SELL").
func (s OrderSide) String() string {
	return [...]string{"BUY", "SELL"}[s]
}

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderSide.
// It accepts both uppercase and lowercase formats.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	str := string(data)
	switch str {
	case `"BUY"`, `"buy"`, `0`:
		*s = SideBuy
	case `"SELL"`, `"sell"`, `1`:
		*s = SideSell
	}
	return nil
}

// TransactionType classifies an entry of the user transaction history.
type TransactionType int

const (
	TransactionDeposit TransactionType = iota
	TransactionWithdrawal
	TransactionTrade
)

// String returns the string representation of the transaction type.
func (t TransactionType) String() string {
	switch t {
	case TransactionDeposit:
		return "DEPOSIT"
	case TransactionWithdrawal:
		return "WITHDRAWAL"
	case TransactionTrade:
		return "TRADE"
	default:
		return "UNKNOWN"
	}
}

// Ticker represents the exchange's last-24-hours market summary.
type Ticker struct {
	// Last is the price of the most recent trade.
	Last apd.Decimal `json:"last"`
	// High is the highest price in the last 24 hours.
	High apd.Decimal `json:"high"`
	// Low is the lowest price in the last 24 hours.
	Low apd.Decimal `json:"low"`
	// Volume is the traded volume in the last 24 hours.
	Volume apd.Decimal `json:"volume"`
	// Bid is the highest buy order.
	Bid apd.Decimal `json:"bid"`
	// Ask is the lowest sell order.
	Ask apd.Decimal `json:"ask"`
	// Timestamp is when this ticker was generated.
	Timestamp time.Time `json:"timestamp"`
}

// OrderBookLevel represents a single price level in the order book.
type OrderBookLevel struct {
	Price  apd.Decimal `json:"price"`
	Amount apd.Decimal `json:"amount"`
}

// OrderBook is a snapshot of resting bids and asks in exchange order.
type OrderBook struct {
	Timestamp time.Time        `json:"timestamp"`
	Bids      []OrderBookLevel `json:"bids"`
	Asks      []OrderBookLevel `json:"asks"`
}

// ConversionRate holds the EUR/USD rates applied to deposits and withdrawals.
type ConversionRate struct {
	Buy  apd.Decimal `json:"buy"`
	Sell apd.Decimal `json:"sell"`
}

// Transaction is one public trade.
type Transaction struct {
	ID     string      `json:"tid"`
	Date   time.Time   `json:"date"`
	Price  apd.Decimal `json:"price"`
	Amount apd.Decimal `json:"amount"`
}

// Balance is the account's USD and BTC position.
type Balance struct {
	BTCReserved  apd.Decimal `json:"btc_reserved"`
	BTCAvailable apd.Decimal `json:"btc_available"`
	BTCBalance   apd.Decimal `json:"btc_balance"`
	USDReserved  apd.Decimal `json:"usd_reserved"`
	USDAvailable apd.Decimal `json:"usd_available"`
	USDBalance   apd.Decimal `json:"usd_balance"`
	// Fee is the customer's trading fee in percent.
	Fee apd.Decimal `json:"fee"`
}

// Order is a limit order as returned by order placement and open-order listing.
type Order struct {
	ID       string      `json:"id"`
	Side     OrderSide   `json:"type"`
	Price    apd.Decimal `json:"price"`
	Amount   apd.Decimal `json:"amount"`
	DateTime time.Time   `json:"datetime"`
}

// UserTransaction is one entry of the account's transaction history.
type UserTransaction struct {
	ID       string          `json:"id"`
	OrderID  string          `json:"order_id,omitempty"`
	Type     TransactionType `json:"type"`
	USD      apd.Decimal     `json:"usd"`
	BTC      apd.Decimal     `json:"btc"`
	Fee      apd.Decimal     `json:"fee"`
	DateTime time.Time       `json:"datetime"`
}

// WithdrawalRequest is a pending or processed withdrawal.
type WithdrawalRequest struct {
	ID       string      `json:"id"`
	Type     int64       `json:"type"`
	Status   int64       `json:"status"`
	Amount   apd.Decimal `json:"amount"`
	Data     string      `json:"data,omitempty"`
	DateTime time.Time   `json:"datetime"`
}

// UnconfirmedDeposit is a bitcoin deposit still waiting for confirmations.
type UnconfirmedDeposit struct {
	Address       string      `json:"address"`
	Amount        apd.Decimal `json:"amount"`
	Confirmations int64       `json:"confirmations"`
}

// CodeValue is the USD and BTC value carried by a Bitstamp code.
type CodeValue struct {
	USD apd.Decimal `json:"usd"`
	BTC apd.Decimal `json:"btc"`
}
