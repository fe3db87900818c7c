package treasury

// MovementTypeCode is the short code of a catalog movement type.
type MovementTypeCode string

// Catalog codes carried over from the original transaction-type table.
const (
	MovementDonation MovementTypeCode = "DON" // donation income
	MovementCredit   MovementTypeCode = "CRE" // income (sales, manual credit)
	MovementDebit    MovementTypeCode = "DEB" // expense / manual debit
)

// IsValid checks whether the code belongs to the catalog.
func (c MovementTypeCode) IsValid() bool {
	switch c {
	case MovementDonation, MovementCredit, MovementDebit:
		return true
	}
	return false
}

// String returns the string representation of the code
func (c MovementTypeCode) String() string {
	return string(c)
}

// MovementType is a row of the static transaction-type catalog. The catalog is
// maintained elsewhere; the engine only resolves ids and codes against it.
type MovementType struct {
	ID          int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Code        MovementTypeCode `gorm:"column:code;size:8;uniqueIndex;not null"`
	Description string           `gorm:"column:description;size:100;not null"`
}

// TableName returns the table name for GORM
func (MovementType) TableName() string {
	return "movement_types"
}

// IsIncome reports whether entries of this type increase the balance.
func (t *MovementType) IsIncome() bool {
	return t.Code == MovementDonation || t.Code == MovementCredit
}
