package treasury

import (
	"testing"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashBalance_Apply(t *testing.T) {
	t.Run("credit increases the balance", func(t *testing.T) {
		b := NewCashBalance(1)

		newAmount, err := b.Apply(decimal.NewFromFloat(50.00), 7)

		require.NoError(t, err)
		assert.True(t, newAmount.Equal(decimal.NewFromFloat(50.00)))
		assert.True(t, b.Amount.Equal(decimal.NewFromFloat(50.00)))
		assert.Equal(t, int64(7), b.UpdatedBy)
	})

	t.Run("debit within funds decreases the balance", func(t *testing.T) {
		b := NewCashBalance(1)
		_, err := b.Apply(decimal.NewFromFloat(100.00), 1)
		require.NoError(t, err)

		newAmount, err := b.Apply(decimal.NewFromFloat(-30.50), 1)

		require.NoError(t, err)
		assert.True(t, newAmount.Equal(decimal.NewFromFloat(69.50)))
	})

	t.Run("rejects movement that would go negative", func(t *testing.T) {
		b := NewCashBalance(1)
		_, err := b.Apply(decimal.NewFromFloat(50.00), 1)
		require.NoError(t, err)

		_, err = b.Apply(decimal.NewFromFloat(-75.00), 1)

		assert.ErrorIs(t, err, shared.ErrInsufficientFunds)
		// Balance must be untouched after the rejection.
		assert.True(t, b.Amount.Equal(decimal.NewFromFloat(50.00)))
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		b := NewCashBalance(1)

		_, err := b.Apply(decimal.Zero, 1)

		require.Error(t, err)
		de, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_AMOUNT", de.Code)
	})

	t.Run("sequence of movements never dips below zero", func(t *testing.T) {
		b := NewCashBalance(1)
		movements := []float64{20, -5, -10, 40, -44.99, -0.01, -1}
		for _, m := range movements {
			_, err := b.Apply(decimal.NewFromFloat(m), 1)
			if err != nil {
				assert.ErrorIs(t, err, shared.ErrInsufficientFunds)
			}
			assert.False(t, b.Amount.IsNegative())
		}
	})
}

func TestNewLedgerEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry, err := NewLedgerEntry(2, decimal.NewFromFloat(50.00), decimal.NewFromFloat(50.00), "Ingreso manual", 7)

		require.NoError(t, err)
		assert.Equal(t, DefaultCashRegisterID, entry.CashRegisterID)
		assert.Equal(t, int64(7), entry.EnteredBy)
		assert.True(t, entry.ResultingBalance.Equal(decimal.NewFromFloat(50.00)))
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewLedgerEntry(2, decimal.Zero, decimal.NewFromFloat(10), "x", 1)
		require.Error(t, err)
	})

	t.Run("rejects missing movement type", func(t *testing.T) {
		_, err := NewLedgerEntry(0, decimal.NewFromFloat(5), decimal.NewFromFloat(5), "x", 1)
		require.Error(t, err)
	})

	t.Run("rejects negative resulting balance", func(t *testing.T) {
		_, err := NewLedgerEntry(3, decimal.NewFromFloat(-5), decimal.NewFromFloat(-5), "x", 1)
		assert.ErrorIs(t, err, shared.ErrInsufficientFunds)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewLedgerEntry(2, decimal.NewFromFloat(5), decimal.NewFromFloat(5), "", 1)
		require.Error(t, err)
	})
}

func TestMovementTypeCode(t *testing.T) {
	assert.True(t, MovementDonation.IsValid())
	assert.True(t, MovementCredit.IsValid())
	assert.True(t, MovementDebit.IsValid())
	assert.False(t, MovementTypeCode("XYZ").IsValid())

	donation := MovementType{Code: MovementDonation}
	debit := MovementType{Code: MovementDebit}
	assert.True(t, donation.IsIncome())
	assert.False(t, debit.IsIncome())
}
