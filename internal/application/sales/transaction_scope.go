package sales

import (
	"context"

	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/inventory"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/sales"
)

// Repos provides access to every repository a sale touches, all bound to one
// database transaction: the sale header and lines, the beneficiary holding,
// and the treasury pair (cash balance + journal). The whole set commits or
// rolls back as a unit, so no intermediate sale state is ever observable.
type Repos interface {
	treasuryapp.Repos
	Sales() sales.SaleRepository
	Beneficiaries() inventory.BeneficiaryStockRepository
}

// TransactionScope runs a function within a database transaction.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repos) error) error
}
