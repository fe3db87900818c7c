package treasury

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LedgerEntry is one immutable, balance-affecting event: a manual movement,
// sale proceeds, or a donation. Entries are append-only; summing the signed
// amounts from the beginning of time yields the current CashBalance amount.
type LedgerEntry struct {
	ID               int64           `gorm:"column:id;primaryKey;autoIncrement"`
	MovementTypeID   int64           `gorm:"column:movement_type_id;not null;index"`
	Amount           decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	ResultingBalance decimal.Decimal `gorm:"column:resulting_balance;type:decimal(12,2);not null"`
	Description      string          `gorm:"column:description;size:255;not null"`
	CashRegisterID   int64           `gorm:"column:cash_register_id;not null;index"`
	EnteredBy        int64           `gorm:"column:entered_by;not null"`
	EnteredAt        time.Time       `gorm:"column:entered_at;not null;index"`
}

// TableName returns the table name for GORM
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// NewLedgerEntry creates an entry for a movement that has already been applied
// to the balance. Positive amounts increase the balance, negative decrease it.
func NewLedgerEntry(movementTypeID int64, amount, resultingBalance decimal.Decimal, description string, actor int64) (*LedgerEntry, error) {
	if movementTypeID <= 0 {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Movement type is required")
	}
	if amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Movement amount cannot be zero")
	}
	if resultingBalance.IsNegative() {
		return nil, shared.ErrInsufficientFunds
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Movement description is required")
	}
	return &LedgerEntry{
		MovementTypeID:   movementTypeID,
		Amount:           amount,
		ResultingBalance: resultingBalance,
		Description:      description,
		CashRegisterID:   DefaultCashRegisterID,
		EnteredBy:        actor,
		EnteredAt:        time.Now(),
	}, nil
}

// DailySummary aggregates today's ledger activity for the register.
type DailySummary struct {
	IncomeToday  decimal.Decimal `json:"ingresosHoy"`
	ExpenseToday decimal.Decimal `json:"egresosHoy"`
}
