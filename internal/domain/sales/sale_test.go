package sales

import (
	"testing"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestNewSale(t *testing.T) {
	t.Run("computes subtotals and total", func(t *testing.T) {
		sale, err := NewSale(7, []LineInput{
			{Quantity: 10, UnitPrice: dec(8.00)},
			{Quantity: 2, UnitPrice: dec(5.50)},
		}, dec(91.00), 3)

		require.NoError(t, err)
		require.Len(t, sale.Lines, 2)
		assert.True(t, sale.Lines[0].Subtotal.Equal(dec(80.00)))
		assert.True(t, sale.Lines[1].Subtotal.Equal(dec(11.00)))
		assert.True(t, sale.TotalAmount.Equal(dec(91.00)))
		assert.Equal(t, int64(12), sale.TotalQuantity())
		assert.Equal(t, int64(3), sale.EnteredBy)
	})

	t.Run("rejects declared total that does not match the lines", func(t *testing.T) {
		_, err := NewSale(7, []LineInput{{Quantity: 10, UnitPrice: dec(8.00)}}, dec(79.00), 1)
		assert.ErrorIs(t, err, shared.ErrTotalMismatch)
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		_, err := NewSale(7, nil, decimal.Zero, 1)
		require.Error(t, err)
	})

	t.Run("rejects non-positive quantity or price", func(t *testing.T) {
		_, err := NewSale(7, []LineInput{{Quantity: 0, UnitPrice: dec(8)}}, dec(0), 1)
		require.Error(t, err)
		_, err = NewSale(7, []LineInput{{Quantity: 1, UnitPrice: dec(0)}}, dec(0), 1)
		require.Error(t, err)
		_, err = NewSale(7, []LineInput{{Quantity: 1, UnitPrice: dec(-2)}}, dec(-2), 1)
		require.Error(t, err)
	})

	t.Run("rejects missing beneficiary", func(t *testing.T) {
		_, err := NewSale(0, []LineInput{{Quantity: 1, UnitPrice: dec(8)}}, dec(8), 1)
		require.Error(t, err)
	})
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int64
		unitPrice     float64
		wantCash      float64
		wantInventory float64
	}{
		{"unit price above the per-unit cut", 10, 8.00, 65.00, 15.00},
		{"unit price exactly the cut", 4, 6.50, 26.00, 0.00},
		{"unit price below the cut caps cash at the subtotal", 10, 5.00, 50.00, 0.00},
		{"single unit", 1, 20.00, 6.50, 13.50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal := dec(tt.unitPrice).Mul(decimal.NewFromInt(tt.quantity))
			split := SplitLine(tt.quantity, subtotal, DefaultCashPerUnit)
			assert.True(t, split.Cash.Equal(dec(tt.wantCash)), "cash = %s", split.Cash)
			assert.True(t, split.InventoryValue.Equal(dec(tt.wantInventory)), "inventory = %s", split.InventoryValue)
		})
	}
}

func TestSale_Split(t *testing.T) {
	sale, err := NewSale(7, []LineInput{
		{Quantity: 10, UnitPrice: dec(8.00)}, // cash 65.00, inventory 15.00
		{Quantity: 5, UnitPrice: dec(5.00)},  // cash capped at 25.00, inventory 0
	}, dec(105.00), 1)
	require.NoError(t, err)

	split := sale.Split(DefaultCashPerUnit)

	assert.True(t, split.Cash.Equal(dec(90.00)))
	assert.True(t, split.InventoryValue.Equal(dec(15.00)))
	// Split is exhaustive: cash + inventory value equals the sale total.
	assert.True(t, split.Cash.Add(split.InventoryValue).Equal(sale.TotalAmount))
}
