package treasury

import (
	"context"
)

// CashBalanceRepository persists the singleton cash balance row.
type CashBalanceRepository interface {
	// Find returns the balance row without locking it (read-only queries).
	// Returns shared.ErrNotFound when the row has never been initialized.
	Find(ctx context.Context) (*CashBalance, error)
	// FindForUpdate reads the balance row holding an exclusive row lock for
	// the remainder of the enclosing transaction. Creates the row at zero on
	// first use. Returns shared.ErrLockTimeout when the lock wait expires.
	FindForUpdate(ctx context.Context, actor int64) (*CashBalance, error)
	// Save writes the mutated balance back. Must be called inside the same
	// transaction that acquired the lock.
	Save(ctx context.Context, balance *CashBalance) error
}

// LedgerEntryRepository is the append-only journal store. Entries are never
// updated or deleted; there is deliberately no mutation beyond Append.
type LedgerEntryRepository interface {
	Append(ctx context.Context, entry *LedgerEntry) error
	FindByID(ctx context.Context, id int64) (*LedgerEntry, error)
	FindAll(ctx context.Context) ([]LedgerEntry, error)
	// FindRecent returns the latest entries, newest first.
	FindRecent(ctx context.Context, limit int) ([]LedgerEntry, error)
	// DailySummary sums today's income and expense for the register.
	DailySummary(ctx context.Context, cashRegisterID int64) (*DailySummary, error)
}

// MovementTypeRepository resolves the static transaction-type catalog.
type MovementTypeRepository interface {
	FindByID(ctx context.Context, id int64) (*MovementType, error)
	FindByCode(ctx context.Context, code MovementTypeCode) (*MovementType, error)
	FindAll(ctx context.Context) ([]MovementType, error)
}
