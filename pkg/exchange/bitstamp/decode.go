package bitstamp

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"

	"bitstampgo/pkg/core"
)

// The Decode functions convert normalized responses, as returned by
// Protocol.ParseResponse, into core types. Fields the typed form does not
// carry are ignored.

// DecodeTicker converts a normalized ticker response.
func DecodeTicker(v any) (*core.Ticker, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}

	ticker := &core.Ticker{Timestamp: unixField(obj, "timestamp")}
	decimalField(&ticker.Last, obj, "last")
	decimalField(&ticker.High, obj, "high")
	decimalField(&ticker.Low, obj, "low")
	decimalField(&ticker.Volume, obj, "volume")
	decimalField(&ticker.Bid, obj, "bid")
	decimalField(&ticker.Ask, obj, "ask")

	return ticker, nil
}

// DecodeOrderBook converts a normalized order book response.
func DecodeOrderBook(v any) (*core.OrderBook, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}

	book := &core.OrderBook{Timestamp: unixField(obj, "timestamp")}
	if book.Bids, err = decodeLevels(obj["bids"]); err != nil {
		return nil, fmt.Errorf("bids: %w", err)
	}
	if book.Asks, err = decodeLevels(obj["asks"]); err != nil {
		return nil, fmt.Errorf("asks: %w", err)
	}

	return book, nil
}

func decodeLevels(v any) ([]core.OrderBookLevel, error) {
	levels, ok := v.([]map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected levels type: %T", v)
	}

	out := make([]core.OrderBookLevel, 0, len(levels))
	for _, l := range levels {
		var level core.OrderBookLevel
		decimalField(&level.Price, l, "price")
		decimalField(&level.Amount, l, "amount")
		out = append(out, level)
	}
	return out, nil
}

// DecodeConversionRate converts a normalized EUR/USD rate response.
func DecodeConversionRate(v any) (*core.ConversionRate, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}

	rate := &core.ConversionRate{}
	decimalField(&rate.Buy, obj, "buy")
	decimalField(&rate.Sell, obj, "sell")
	return rate, nil
}

// DecodeTransactions converts a normalized public transaction list.
func DecodeTransactions(v any) ([]core.Transaction, error) {
	items, err := asList(v)
	if err != nil {
		return nil, err
	}

	txs := make([]core.Transaction, 0, len(items))
	for _, item := range items {
		tx := core.Transaction{
			ID:   stringField(item, "tid"),
			Date: unixField(item, "date"),
		}
		decimalField(&tx.Price, item, "price")
		decimalField(&tx.Amount, item, "amount")
		txs = append(txs, tx)
	}
	return txs, nil
}

// DecodeBalance converts a normalized account balance response.
func DecodeBalance(v any) (*core.Balance, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}

	b := &core.Balance{}
	decimalField(&b.BTCReserved, obj, "btc_reserved")
	decimalField(&b.BTCAvailable, obj, "btc_available")
	decimalField(&b.BTCBalance, obj, "btc_balance")
	decimalField(&b.USDReserved, obj, "usd_reserved")
	decimalField(&b.USDAvailable, obj, "usd_available")
	decimalField(&b.USDBalance, obj, "usd_balance")
	decimalField(&b.Fee, obj, "fee")
	return b, nil
}

// DecodeOrder converts a normalized buy or sell order response.
func DecodeOrder(v any) (*core.Order, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}
	order := decodeOrder(obj)
	return &order, nil
}

// DecodeOrders converts a normalized open orders list.
func DecodeOrders(v any) ([]core.Order, error) {
	items, err := asList(v)
	if err != nil {
		return nil, err
	}

	orders := make([]core.Order, 0, len(items))
	for _, item := range items {
		orders = append(orders, decodeOrder(item))
	}
	return orders, nil
}

func decodeOrder(obj map[string]any) core.Order {
	order := core.Order{
		ID:       stringField(obj, "id"),
		Side:     core.OrderSide(intField(obj, "type")),
		DateTime: unixField(obj, "datetime"),
	}
	decimalField(&order.Price, obj, "price")
	decimalField(&order.Amount, obj, "amount")
	return order
}

// DecodeUserTransactions converts a normalized user transaction list.
func DecodeUserTransactions(v any) ([]core.UserTransaction, error) {
	items, err := asList(v)
	if err != nil {
		return nil, err
	}

	txs := make([]core.UserTransaction, 0, len(items))
	for _, item := range items {
		tx := core.UserTransaction{
			ID:       stringField(item, "id"),
			OrderID:  stringField(item, "order_id"),
			Type:     core.TransactionType(intField(item, "type")),
			DateTime: unixField(item, "datetime"),
		}
		decimalField(&tx.USD, item, "usd")
		decimalField(&tx.BTC, item, "btc")
		decimalField(&tx.Fee, item, "fee")
		txs = append(txs, tx)
	}
	return txs, nil
}

// DecodeWithdrawalRequests converts a normalized withdrawal request list.
func DecodeWithdrawalRequests(v any) ([]core.WithdrawalRequest, error) {
	items, err := asList(v)
	if err != nil {
		return nil, err
	}

	reqs := make([]core.WithdrawalRequest, 0, len(items))
	for _, item := range items {
		wr := core.WithdrawalRequest{
			ID:       stringField(item, "id"),
			Type:     intField(item, "type"),
			Status:   intField(item, "status"),
			Data:     stringField(item, "data"),
			DateTime: unixField(item, "datetime"),
		}
		decimalField(&wr.Amount, item, "amount")
		reqs = append(reqs, wr)
	}
	return reqs, nil
}

// DecodeUnconfirmedDeposits converts a normalized unconfirmed deposit
// response, accepting a single object or a list.
func DecodeUnconfirmedDeposits(v any) ([]core.UnconfirmedDeposit, error) {
	var items []map[string]any
	switch val := v.(type) {
	case map[string]any:
		items = []map[string]any{val}
	case []map[string]any:
		items = val
	default:
		return nil, fmt.Errorf("unexpected response type: %T", v)
	}

	deposits := make([]core.UnconfirmedDeposit, 0, len(items))
	for _, item := range items {
		d := core.UnconfirmedDeposit{
			Address:       stringField(item, "address"),
			Confirmations: intField(item, "confirmations"),
		}
		decimalField(&d.Amount, item, "amount")
		deposits = append(deposits, d)
	}
	return deposits, nil
}

// DecodeCodeValue converts a normalized check_code or redeem_code response.
func DecodeCodeValue(v any) (*core.CodeValue, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}

	cv := &core.CodeValue{}
	decimalField(&cv.USD, obj, "usd")
	decimalField(&cv.BTC, obj, "btc")
	return cv, nil
}

// DecodeAddress extracts a deposit address from either a bare string or an
// object carrying an "address" field.
func DecodeAddress(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case map[string]any:
		if addr, ok := val["address"].(string); ok {
			return addr, nil
		}
		return "", fmt.Errorf("address field missing")
	default:
		return "", fmt.Errorf("unexpected response type: %T", v)
	}
}

// DecodeBool asserts a normalized boolean response.
func DecodeBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected response type: %T", v)
	}
	return b, nil
}

func asObject(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response type: %T", v)
	}
	return obj, nil
}

func asList(v any) ([]map[string]any, error) {
	items, ok := v.([]map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response type: %T", v)
	}
	return items, nil
}

func decimalField(dest *apd.Decimal, obj map[string]any, name string) {
	if d, ok := obj[name].(*apd.Decimal); ok && d != nil {
		dest.Set(d)
	}
}

func unixField(obj map[string]any, name string) time.Time {
	if n, ok := obj[name].(int64); ok {
		return time.Unix(n, 0)
	}
	return time.Time{}
}

func intField(obj map[string]any, name string) int64 {
	n, err := toInt(obj[name])
	if err != nil {
		return 0
	}
	return n
}

func stringField(obj map[string]any, name string) string {
	switch v := obj[name].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
