package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is an audit record of one notification outcome.
// Type examples: "notify.feedback.sent", "notify.reminder.skipped".
// Meta may contain reason, provider, error, etc.
type Event struct {
	Type      string
	TenantID  uuid.UUID
	BookingID uuid.UUID
	Meta      map[string]string
	Time      time.Time
}

// Publisher publishes events to an external system (log, queue, etc.).
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

const (
	TypeReminderSent    = "notify.reminder.sent"
	TypeReminderSkipped = "notify.reminder.skipped"
	TypeReminderFailed  = "notify.reminder.failed"
	TypeFeedbackSent    = "notify.feedback.sent"
	TypeFeedbackFailed  = "notify.feedback.failed"
)
