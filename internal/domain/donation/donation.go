package donation

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Donation records money given by a donor. Registering a donation credits the
// cash balance through the ledger with a donation-type movement.
type Donation struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	DonorID   int64           `gorm:"column:donor_id;not null;index"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	EnteredAt time.Time       `gorm:"column:entered_at;not null"`
	EnteredBy int64           `gorm:"column:entered_by;not null"`
}

// TableName returns the table name for GORM
func (Donation) TableName() string {
	return "donations"
}

// NewDonation validates and builds a donation record.
func NewDonation(donorID int64, amount decimal.Decimal, actor int64) (*Donation, error) {
	if donorID <= 0 {
		return nil, shared.NewDomainError("INVALID_DONOR", "Donor ID is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Donation amount must be positive")
	}
	return &Donation{
		DonorID:   donorID,
		Amount:    amount,
		EnteredAt: time.Now(),
		EnteredBy: actor,
	}, nil
}

