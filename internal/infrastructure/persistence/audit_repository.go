package persistence

import (
	"context"
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/application/audit"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogModel is the persistence shape of an audit event.
type ActivityLogModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	Action      string    `gorm:"column:action;size:32;not null"`
	TableName_  string    `gorm:"column:table_name;size:64;not null"`
	AffectedPK  string    `gorm:"column:affected_pk;size:64;not null"`
	Description string    `gorm:"column:description;size:255;not null"`
	OccurredAt  time.Time `gorm:"column:occurred_at;not null;index"`
}

// TableName returns the table name for GORM
func (ActivityLogModel) TableName() string {
	return "activity_log"
}

// GormAuditRecorder stores audit events in the activity_log table. Writes
// happen outside the business transaction; a failed write is reported to the
// caller, which logs it and moves on.
type GormAuditRecorder struct {
	db *gorm.DB
}

// NewGormAuditRecorder creates a new GormAuditRecorder
func NewGormAuditRecorder(db *gorm.DB) *GormAuditRecorder {
	return &GormAuditRecorder{db: db}
}

// Record implements audit.Recorder.
func (r *GormAuditRecorder) Record(ctx context.Context, event audit.Event) error {
	model := ActivityLogModel{
		ID:          event.ID,
		UserID:      event.UserID,
		Action:      event.Action,
		TableName_:  event.Table,
		AffectedPK:  event.AffectedPK,
		Description: event.Description,
		OccurredAt:  event.OccurredAt,
	}
	return translateError(r.db.WithContext(ctx).Create(&model).Error)
}

var _ audit.Recorder = (*GormAuditRecorder)(nil)
