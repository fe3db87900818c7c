package inventory

import (
	"context"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/inventory"
)

// Repos provides access to the stock repositories within a transaction. The
// general pool decrement and the beneficiary holding increment share the same
// database transaction and commit or roll back together.
type Repos interface {
	General() inventory.GeneralStockRepository
	Beneficiaries() inventory.BeneficiaryStockRepository
}

// TransactionScope runs a function within a database transaction.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repos) error) error
}

// NoOpTransactionScope runs the function without a real transaction.
type NoOpTransactionScope struct {
	general       inventory.GeneralStockRepository
	beneficiaries inventory.BeneficiaryStockRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(general inventory.GeneralStockRepository, beneficiaries inventory.BeneficiaryStockRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{general: general, beneficiaries: beneficiaries}
}

// Execute runs fn directly.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos Repos) error) error {
	return fn(s)
}

// General returns the general stock repository.
func (s *NoOpTransactionScope) General() inventory.GeneralStockRepository { return s.general }

// Beneficiaries returns the beneficiary stock repository.
func (s *NoOpTransactionScope) Beneficiaries() inventory.BeneficiaryStockRepository {
	return s.beneficiaries
}

var (
	_ TransactionScope = (*NoOpTransactionScope)(nil)
	_ Repos            = (*NoOpTransactionScope)(nil)
)
