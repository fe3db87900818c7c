package treasury

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultCashRegisterID identifies the single cash register of this deployment.
// The original schema allows several but only one is ever provisioned.
const DefaultCashRegisterID int64 = 1

// CashBalance is the singleton mutable cash balance (the "caja"). Exactly one
// row exists; every mutation happens inside a transaction holding an exclusive
// lock on that row, and every mutation appends exactly one LedgerEntry.
type CashBalance struct {
	ID        int64           `gorm:"column:id;primaryKey"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	UpdatedAt time.Time       `gorm:"column:updated_at;not null"`
	UpdatedBy int64           `gorm:"column:updated_by;not null"`
}

// TableName returns the table name for GORM
func (CashBalance) TableName() string {
	return "cash_balances"
}

// NewCashBalance creates the singleton balance row, starting at zero.
func NewCashBalance(actor int64) *CashBalance {
	return &CashBalance{
		ID:        DefaultCashRegisterID,
		Amount:    decimal.Zero,
		UpdatedAt: time.Now(),
		UpdatedBy: actor,
	}
}

// Apply adds a signed amount to the balance. A result below zero rejects the
// whole movement; the balance is left untouched.
func (b *CashBalance) Apply(amount decimal.Decimal, actor int64) (decimal.Decimal, error) {
	if amount.IsZero() {
		return decimal.Zero, shared.NewDomainError("INVALID_AMOUNT", "Movement amount cannot be zero")
	}
	newAmount := b.Amount.Add(amount)
	if newAmount.IsNegative() {
		return decimal.Zero, shared.ErrInsufficientFunds
	}
	b.Amount = newAmount
	b.UpdatedAt = time.Now()
	b.UpdatedBy = actor
	return newAmount, nil
}
