package inventory

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
)

// DefaultGeneralStockID identifies the single general stock row.
const DefaultGeneralStockID int64 = 1

// GeneralStock is the shared, unallocated inventory pool (singleton row).
// Intake (purchasing) increases it; allocations to beneficiaries decrease it.
// Like the cash balance, it is only ever mutated under an exclusive row lock.
type GeneralStock struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	CurrentQuantity    int64     `gorm:"column:current_quantity;not null"`
	LastIntakeQuantity int64     `gorm:"column:last_intake_quantity;not null"`
	EnteredAt          time.Time `gorm:"column:entered_at;not null"`
	EnteredBy          int64     `gorm:"column:entered_by;not null"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null"`
	UpdatedBy          int64     `gorm:"column:updated_by;not null"`
}

// TableName returns the table name for GORM
func (GeneralStock) TableName() string {
	return "general_stock"
}

// NewGeneralStock creates the singleton pool row, starting empty.
func NewGeneralStock(actor int64) *GeneralStock {
	now := time.Now()
	return &GeneralStock{
		ID:        DefaultGeneralStockID,
		EnteredAt: now,
		EnteredBy: actor,
		UpdatedAt: now,
		UpdatedBy: actor,
	}
}

// Withdraw removes quantity units from the pool for allocation to a
// beneficiary. Underflow rejects the withdrawal without touching the row.
func (s *GeneralStock) Withdraw(quantity int64, actor int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if s.CurrentQuantity < quantity {
		return shared.ErrInsufficientStock
	}
	s.CurrentQuantity -= quantity
	s.UpdatedAt = time.Now()
	s.UpdatedBy = actor
	return nil
}

// Intake adds newly purchased units to the pool and records the intake size.
func (s *GeneralStock) Intake(quantity int64, actor int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	s.CurrentQuantity += quantity
	s.LastIntakeQuantity = quantity
	s.UpdatedAt = time.Now()
	s.UpdatedBy = actor
	return nil
}
