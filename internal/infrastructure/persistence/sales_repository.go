package persistence

import (
	"context"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/sales"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create inserts the sale header and all its lines. GORM cascades the Lines
// association, filling in SaleID on each line.
func (r *GormSaleRepository) Create(ctx context.Context, sale *sales.Sale) error {
	return translateError(r.db.WithContext(ctx).Create(sale).Error)
}

// FindByID returns one sale header without its lines.
func (r *GormSaleRepository) FindByID(ctx context.Context, id int64) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &sale, nil
}

// FindByIDWithLines returns one sale with its line items.
func (r *GormSaleRepository) FindByIDWithLines(ctx context.Context, id int64) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&sale, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &sale, nil
}

// FindAll returns every sale header, newest first.
func (r *GormSaleRepository) FindAll(ctx context.Context) ([]sales.Sale, error) {
	var result []sales.Sale
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&result).Error; err != nil {
		return nil, translateError(err)
	}
	return result, nil
}

var _ sales.SaleRepository = (*GormSaleRepository)(nil)
