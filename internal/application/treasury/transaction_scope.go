package treasury

import (
	"context"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
)

// Repos provides access to the treasury repositories within a transaction.
// Both repositories share the same underlying database transaction, so the
// balance mutation and the journal append commit or roll back as one unit.
type Repos interface {
	Balances() treasury.CashBalanceRepository
	Entries() treasury.LedgerEntryRepository
}

// TransactionScope runs a function within a database transaction. If the
// function returns an error the transaction is rolled back, otherwise it is
// committed.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repos) error) error
}

// NoOpTransactionScope runs the function without a real transaction. Useful
// for tests built on in-memory repositories.
type NoOpTransactionScope struct {
	balances treasury.CashBalanceRepository
	entries  treasury.LedgerEntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(balances treasury.CashBalanceRepository, entries treasury.LedgerEntryRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{balances: balances, entries: entries}
}

// Execute runs fn directly.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos Repos) error) error {
	return fn(s)
}

// Balances returns the cash balance repository.
func (s *NoOpTransactionScope) Balances() treasury.CashBalanceRepository { return s.balances }

// Entries returns the ledger entry repository.
func (s *NoOpTransactionScope) Entries() treasury.LedgerEntryRepository { return s.entries }

var (
	_ TransactionScope = (*NoOpTransactionScope)(nil)
	_ Repos            = (*NoOpTransactionScope)(nil)
)
