package sales

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultCashPerUnit is the fixed cash contribution per unit sold (Q6.50).
// Deployments may override it through configuration; this default preserves
// the historical business rule.
var DefaultCashPerUnit = decimal.NewFromFloat(6.50)

// Sale is an immutable sale header. Sales have no update or delete path so
// the audit trail stays intact.
type Sale struct {
	ID            int64           `gorm:"column:id;primaryKey;autoIncrement"`
	BeneficiaryID int64           `gorm:"column:beneficiary_id;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2);not null"`
	EnteredBy     int64           `gorm:"column:entered_by;not null"`
	EnteredAt     time.Time       `gorm:"column:entered_at;not null;index"`

	Lines []SaleLine `gorm:"foreignKey:SaleID;references:ID"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleLine is one immutable line item of a sale.
type SaleLine struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	SaleID    int64           `gorm:"column:sale_id;not null;index"`
	Quantity  int64           `gorm:"column:quantity;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"column:subtotal;type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (SaleLine) TableName() string {
	return "sale_lines"
}

// LineInput is the caller-supplied shape of one line.
type LineInput struct {
	Quantity  int64
	UnitPrice decimal.Decimal
}

// NewSale builds a sale header with its lines. The total is recomputed from
// the lines; a declared total that does not match is rejected rather than
// trusted.
func NewSale(beneficiaryID int64, lines []LineInput, declaredTotal decimal.Decimal, actor int64) (*Sale, error) {
	if beneficiaryID <= 0 {
		return nil, shared.NewDomainError("INVALID_BENEFICIARY", "Beneficiary ID is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "A sale requires at least one line item")
	}

	sale := &Sale{
		BeneficiaryID: beneficiaryID,
		EnteredBy:     actor,
		EnteredAt:     time.Now(),
		Lines:         make([]SaleLine, 0, len(lines)),
	}

	total := decimal.Zero
	for _, in := range lines {
		if in.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
		}
		if !in.UnitPrice.IsPositive() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Line unit price must be positive")
		}
		subtotal := in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity))
		sale.Lines = append(sale.Lines, SaleLine{
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	if !total.Equal(declaredTotal) {
		return nil, shared.ErrTotalMismatch
	}
	sale.TotalAmount = total

	return sale, nil
}

// TotalQuantity is the number of units sold across all lines.
func (s *Sale) TotalQuantity() int64 {
	var total int64
	for _, line := range s.Lines {
		total += line.Quantity
	}
	return total
}

// ProceedsSplit is the division of a sale's proceeds between the cash balance
// and the beneficiary inventory's recorded value.
type ProceedsSplit struct {
	Cash           decimal.Decimal
	InventoryValue decimal.Decimal
}

// SplitLine applies the per-unit rule to one line: each unit contributes
// cashPerUnit to the cash balance, capped at the line subtotal; the remainder
// is inventory value.
func SplitLine(quantity int64, subtotal, cashPerUnit decimal.Decimal) ProceedsSplit {
	cash := cashPerUnit.Mul(decimal.NewFromInt(quantity))
	if cash.GreaterThan(subtotal) {
		cash = subtotal
	}
	return ProceedsSplit{
		Cash:           cash,
		InventoryValue: subtotal.Sub(cash),
	}
}

// Split applies the per-unit rule line by line and sums the result.
func (s *Sale) Split(cashPerUnit decimal.Decimal) ProceedsSplit {
	total := ProceedsSplit{Cash: decimal.Zero, InventoryValue: decimal.Zero}
	for _, line := range s.Lines {
		part := SplitLine(line.Quantity, line.Subtotal, cashPerUnit)
		total.Cash = total.Cash.Add(part.Cash)
		total.InventoryValue = total.InventoryValue.Add(part.InventoryValue)
	}
	return total
}
