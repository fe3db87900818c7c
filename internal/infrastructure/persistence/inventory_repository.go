package persistence

import (
	"context"
	"errors"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/inventory"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormGeneralStockRepository implements GeneralStockRepository using GORM
type GormGeneralStockRepository struct {
	db *gorm.DB
}

// NewGormGeneralStockRepository creates a new GormGeneralStockRepository
func NewGormGeneralStockRepository(db *gorm.DB) *GormGeneralStockRepository {
	return &GormGeneralStockRepository{db: db}
}

// Find returns the pool row without locking it.
func (r *GormGeneralStockRepository) Find(ctx context.Context) (*inventory.GeneralStock, error) {
	var stock inventory.GeneralStock
	if err := r.db.WithContext(ctx).
		First(&stock, "id = ?", inventory.DefaultGeneralStockID).Error; err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindForUpdate locks the pool row with SELECT ... FOR UPDATE, creating it
// empty on first use. Must run inside a transaction.
func (r *GormGeneralStockRepository) FindForUpdate(ctx context.Context, actor int64) (*inventory.GeneralStock, error) {
	var stock inventory.GeneralStock
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stock, "id = ?", inventory.DefaultGeneralStockID).Error
	if err == nil {
		return &stock, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translateError(err)
	}

	fresh := inventory.NewGeneralStock(actor)
	if err := r.db.WithContext(ctx).Create(fresh).Error; err != nil {
		return nil, translateError(err)
	}
	return fresh, nil
}

// Save persists the mutated pool row.
func (r *GormGeneralStockRepository) Save(ctx context.Context, stock *inventory.GeneralStock) error {
	return translateError(r.db.WithContext(ctx).Save(stock).Error)
}

// GormBeneficiaryStockRepository implements BeneficiaryStockRepository using GORM
type GormBeneficiaryStockRepository struct {
	db *gorm.DB
}

// NewGormBeneficiaryStockRepository creates a new GormBeneficiaryStockRepository
func NewGormBeneficiaryStockRepository(db *gorm.DB) *GormBeneficiaryStockRepository {
	return &GormBeneficiaryStockRepository{db: db}
}

// FindByBeneficiary returns one holding without locking it.
func (r *GormBeneficiaryStockRepository) FindByBeneficiary(ctx context.Context, beneficiaryID int64) (*inventory.BeneficiaryStock, error) {
	var stock inventory.BeneficiaryStock
	if err := r.db.WithContext(ctx).
		First(&stock, "beneficiary_id = ?", beneficiaryID).Error; err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindByBeneficiaryForUpdate locks one holding row with SELECT ... FOR UPDATE.
// Must run inside a transaction.
func (r *GormBeneficiaryStockRepository) FindByBeneficiaryForUpdate(ctx context.Context, beneficiaryID int64) (*inventory.BeneficiaryStock, error) {
	var stock inventory.BeneficiaryStock
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stock, "beneficiary_id = ?", beneficiaryID).Error; err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindAll returns every holding ordered by beneficiary.
func (r *GormBeneficiaryStockRepository) FindAll(ctx context.Context) ([]inventory.BeneficiaryStock, error) {
	var stocks []inventory.BeneficiaryStock
	if err := r.db.WithContext(ctx).
		Order("beneficiary_id").
		Find(&stocks).Error; err != nil {
		return nil, translateError(err)
	}
	return stocks, nil
}

// Save inserts or updates a holding. The unique index on beneficiary_id turns
// a duplicate insert into shared.ErrAlreadyExists.
func (r *GormBeneficiaryStockRepository) Save(ctx context.Context, stock *inventory.BeneficiaryStock) error {
	return translateError(r.db.WithContext(ctx).Save(stock).Error)
}

var (
	_ inventory.GeneralStockRepository     = (*GormGeneralStockRepository)(nil)
	_ inventory.BeneficiaryStockRepository = (*GormBeneficiaryStockRepository)(nil)
)
