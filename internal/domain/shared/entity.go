package shared

import "time"

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() int64
}

// BaseEntity provides the common identity and timestamp fields.
// IDs are database-assigned (auto-increment), matching the original schema.
type BaseEntity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() int64 {
	return e.ID
}

// NewBaseEntity creates a base entity stamped with the current time.
// The ID is zero until the record is persisted.
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{CreatedAt: now, UpdatedAt: now}
}

// AuditStamp records which user entered a record and which user last touched it.
// Every mutating operation takes the actor explicitly; the domain never reads
// ambient session state.
type AuditStamp struct {
	EnteredBy int64 `gorm:"column:entered_by;not null" json:"enteredBy"`
	UpdatedBy int64 `gorm:"column:updated_by;not null" json:"updatedBy"`
}

// Touch updates the modification side of the stamp.
func (a *AuditStamp) Touch(actor int64) {
	a.UpdatedBy = actor
}
