package persistence

import (
	"context"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/donation"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDonationRepository implements DonationRepository using GORM
type GormDonationRepository struct {
	db *gorm.DB
}

// NewGormDonationRepository creates a new GormDonationRepository
func NewGormDonationRepository(db *gorm.DB) *GormDonationRepository {
	return &GormDonationRepository{db: db}
}

// Create inserts a donation record.
func (r *GormDonationRepository) Create(ctx context.Context, d *donation.Donation) error {
	return translateError(r.db.WithContext(ctx).Create(d).Error)
}

// FindByID returns one donation.
func (r *GormDonationRepository) FindByID(ctx context.Context, id int64) (*donation.Donation, error) {
	var d donation.Donation
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

// FindAll returns every donation, newest first.
func (r *GormDonationRepository) FindAll(ctx context.Context) ([]donation.Donation, error) {
	var result []donation.Donation
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&result).Error; err != nil {
		return nil, translateError(err)
	}
	return result, nil
}

// Delete removes one donation record. The ledger entry it produced is kept.
func (r *GormDonationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&donation.Donation{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ donation.DonationRepository = (*GormDonationRepository)(nil)
