package inventory

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BeneficiaryStock is one beneficiary's inventory holding, created lazily on
// the first allocation. CurrentQuantity only grows through allocations and
// only shrinks through sales or consumption; it never goes negative.
type BeneficiaryStock struct {
	ID                 int64           `gorm:"column:id;primaryKey;autoIncrement"`
	BeneficiaryID      int64           `gorm:"column:beneficiary_id;uniqueIndex;not null"`
	InitialQuantity    int64           `gorm:"column:initial_quantity;not null"`
	SoldQuantity       int64           `gorm:"column:sold_quantity;not null"`
	ConsumedQuantity   int64           `gorm:"column:consumed_quantity;not null"`
	CurrentQuantity    int64           `gorm:"column:current_quantity;not null"`
	LastIntakeQuantity int64           `gorm:"column:last_intake_quantity;not null"`
	TotalValue         decimal.Decimal `gorm:"column:total_value;type:decimal(12,2);not null"`
	EnteredAt          time.Time       `gorm:"column:entered_at;not null"`
	EnteredBy          int64           `gorm:"column:entered_by;not null"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;not null"`
	UpdatedBy          int64           `gorm:"column:updated_by;not null"`
}

// TableName returns the table name for GORM
func (BeneficiaryStock) TableName() string {
	return "beneficiary_stock"
}

// NewBeneficiaryStock creates the holding for a beneficiary receiving its
// first allocation. Counters start zeroed; the allocation becomes both the
// current quantity and the last intake.
func NewBeneficiaryStock(beneficiaryID, quantity, actor int64) (*BeneficiaryStock, error) {
	if beneficiaryID <= 0 {
		return nil, shared.NewDomainError("INVALID_BENEFICIARY", "Beneficiary ID is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	now := time.Now()
	return &BeneficiaryStock{
		BeneficiaryID:      beneficiaryID,
		CurrentQuantity:    quantity,
		LastIntakeQuantity: quantity,
		TotalValue:         decimal.Zero,
		EnteredAt:          now,
		EnteredBy:          actor,
		UpdatedAt:          now,
		UpdatedBy:          actor,
	}, nil
}

// NewEmptyBeneficiaryStock initializes a zeroed holding ahead of any
// allocation (the explicit initialization endpoint).
func NewEmptyBeneficiaryStock(beneficiaryID, actor int64) (*BeneficiaryStock, error) {
	if beneficiaryID <= 0 {
		return nil, shared.NewDomainError("INVALID_BENEFICIARY", "Beneficiary ID is required")
	}
	now := time.Now()
	return &BeneficiaryStock{
		BeneficiaryID: beneficiaryID,
		TotalValue:    decimal.Zero,
		EnteredAt:     now,
		EnteredBy:     actor,
		UpdatedAt:     now,
		UpdatedBy:     actor,
	}, nil
}

// Receive adds allocated units. LastIntakeQuantity records only the most
// recent intake, not a running total.
func (s *BeneficiaryStock) Receive(quantity, actor int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	s.CurrentQuantity += quantity
	s.LastIntakeQuantity = quantity
	s.UpdatedAt = time.Now()
	s.UpdatedBy = actor
	return nil
}

// Sell deducts sold units and books the inventory-value share of the
// proceeds. Underflow rejects the sale without touching the holding.
func (s *BeneficiaryStock) Sell(quantity int64, inventoryValue decimal.Decimal, actor int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if inventoryValue.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Inventory value portion cannot be negative")
	}
	if s.CurrentQuantity < quantity {
		return shared.ErrInsufficientStock
	}
	s.CurrentQuantity -= quantity
	s.SoldQuantity += quantity
	s.TotalValue = s.TotalValue.Add(inventoryValue)
	s.UpdatedAt = time.Now()
	s.UpdatedBy = actor
	return nil
}

// Consume deducts units eaten or otherwise used by the beneficiary.
func (s *BeneficiaryStock) Consume(quantity, actor int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if s.CurrentQuantity < quantity {
		return shared.ErrInsufficientStock
	}
	s.CurrentQuantity -= quantity
	s.ConsumedQuantity += quantity
	s.UpdatedAt = time.Now()
	s.UpdatedBy = actor
	return nil
}
