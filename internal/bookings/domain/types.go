package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	bdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/businesses/domain"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ReminderStatuses are the statuses that still get a day-before reminder.
var ReminderStatuses = []Status{StatusConfirmed, StatusPending}

// ErrTokenConflict is returned when a freshly generated feedback token collides with
// another booking's token.
var ErrTokenConflict = errors.New("feedback token already in use")

// DueBooking is a booking joined with the service and business fields needed to render
// a notification.
type DueBooking struct {
	ID            uuid.UUID
	Status        Status
	BookingDate   time.Time // calendar date, midnight UTC
	BookingTime   string    // HH:MM
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	ServiceName   string
	// FeedbackToken is set when a previous feedback run already issued one.
	FeedbackToken string
	Business      bdomain.Business
}

// FeedbackWindow is the half-open range [Start, End) of booking dates eligible for a
// feedback request. Both bounds are wall-clock times in the business timezone.
type FeedbackWindow struct {
	Start time.Time
	End   time.Time
}

// Repository reads due bookings and writes notification state. Every write is safe to repeat.
type Repository interface {
	// ListDueReminders returns bookings on date (YYYY-MM-DD semantics) still waiting for a reminder.
	ListDueReminders(ctx context.Context, date time.Time) ([]DueBooking, error)
	// ListDueFeedback returns at most limit completed bookings inside window without a feedback request.
	ListDueFeedback(ctx context.Context, window FeedbackWindow, limit int) ([]DueBooking, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID) error
	// EnsureFeedbackToken stores candidate unless the booking already has a token, and
	// returns the token that is persisted.
	EnsureFeedbackToken(ctx context.Context, id uuid.UUID, candidate string) (string, error)
	MarkFeedbackSent(ctx context.Context, id uuid.UUID, at time.Time) error
}
