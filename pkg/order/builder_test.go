package order

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitstampgo/pkg/core"
)

func TestBuilder_Build(t *testing.T) {
	lo, err := NewBuilder().Sell().Amount("0.25").Price("610.00").Build()

	require.NoError(t, err)
	assert.Equal(t, core.SideSell, lo.Side)
	assert.Equal(t, core.OpSellLimitOrder, lo.Operation())
	assert.Equal(t, "0.25", lo.Amount.Text('f'))
	assert.Equal(t, "610.00", lo.Price.Text('f'))

	params := lo.Params()
	assert.Equal(t, "0.25", core.FormatParam(params["amount"]))
	assert.Equal(t, "610.00", core.FormatParam(params["price"]))
}

func TestBuilder_DefaultsToBuy(t *testing.T) {
	lo, err := NewBuilder().AmountDecimal(apd.New(5, -1)).PriceDecimal(apd.New(600, 0)).Build()

	require.NoError(t, err)
	assert.Equal(t, core.OpBuyLimitOrder, lo.Operation())
	assert.Equal(t, "0.5", lo.Amount.Text('f'))
}

func TestBuilder_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		wantErr string
	}{
		{"bad_price", NewBuilder().Amount("1").Price("abc"), "parse price"},
		{"bad_amount", NewBuilder().Amount("x").Price("1"), "parse amount"},
		{"missing_amount", NewBuilder().Price("600"), "amount must be positive"},
		{"negative_amount", NewBuilder().Amount("-1").Price("600"), "amount must be positive"},
		{"zero_price", NewBuilder().Amount("1").Price("0"), "price must be positive"},
		{"infinite_price", NewBuilder().Amount("1").Price("Infinity"), "finite"},
		{"bad_side", NewBuilder().Side(core.OrderSide(7)).Amount("1").Price("1"), "invalid order side"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, err := tt.builder.Build()
			assert.Nil(t, lo)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
