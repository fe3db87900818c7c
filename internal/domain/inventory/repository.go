package inventory

import "context"

// GeneralStockRepository persists the singleton general stock row.
type GeneralStockRepository interface {
	// Find returns the pool without locking (read-only snapshot queries).
	Find(ctx context.Context) (*GeneralStock, error)
	// FindForUpdate reads the pool row under an exclusive row lock held for
	// the remainder of the enclosing transaction, creating it empty on first
	// use so a fresh deployment answers InsufficientStock, not NotFound.
	FindForUpdate(ctx context.Context, actor int64) (*GeneralStock, error)
	Save(ctx context.Context, stock *GeneralStock) error
}

// BeneficiaryStockRepository persists per-beneficiary holdings.
type BeneficiaryStockRepository interface {
	FindByBeneficiary(ctx context.Context, beneficiaryID int64) (*BeneficiaryStock, error)
	// FindByBeneficiaryForUpdate locks the holding row for a read-modify-write.
	FindByBeneficiaryForUpdate(ctx context.Context, beneficiaryID int64) (*BeneficiaryStock, error)
	FindAll(ctx context.Context) ([]BeneficiaryStock, error)
	Save(ctx context.Context, stock *BeneficiaryStock) error
}
