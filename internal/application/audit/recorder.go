package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Actions recorded in the activity log, carried over from the original
// bitácora conventions.
const (
	ActionSale       = "VENTA"
	ActionMovement   = "MOVIMIENTO_CAJA"
	ActionAllocation = "ENTREGA"
	ActionDonation   = "DONACION"
)

// Event is one activity-log entry. The log itself is an external collaborator;
// the engine only emits events through the Recorder contract.
type Event struct {
	ID          uuid.UUID
	UserID      int64
	Action      string
	Table       string
	AffectedPK  string
	Description string
	OccurredAt  time.Time
}

// NewEvent builds an event stamped with the current time.
func NewEvent(userID int64, action, table, affectedPK, description string) Event {
	return Event{
		ID:          uuid.New(),
		UserID:      userID,
		Action:      action,
		Table:       table,
		AffectedPK:  affectedPK,
		Description: description,
		OccurredAt:  time.Now(),
	}
}

// Recorder receives activity events. Recording is best-effort: a failure to
// record never rolls back the operation that produced the event.
type Recorder interface {
	Record(ctx context.Context, event Event) error
}

// NoopRecorder discards events. Used in tests and when the log is disabled.
type NoopRecorder struct{}

// Record implements Recorder.
func (NoopRecorder) Record(context.Context, Event) error { return nil }
