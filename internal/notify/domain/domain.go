package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Job names, used in logs, metrics and the trigger endpoint.
const (
	JobReminder = "reminder"
	JobFeedback = "feedback"
)

// Outcome is the terminal state of one booking within a run.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// ItemResult is the outcome for one booking. Err is set when Outcome is failed, and also
// when the notification went out but its state could not be recorded.
type ItemResult struct {
	BookingID uuid.UUID
	Outcome   Outcome
	Err       error
}

// Result aggregates one job run. When Success is false the run aborted before any item
// was processed and only Error is meaningful.
type Result struct {
	Job       string
	Success   bool
	Processed int
	Sent      int
	Skipped   int
	Errors    int
	Error     string
	Items     []ItemResult
}

// Add folds one item into the aggregate.
func (r *Result) Add(item ItemResult) {
	r.Processed++
	r.Items = append(r.Items, item)
	switch {
	case item.Err != nil:
		r.Errors++
	case item.Outcome == OutcomeSent:
		r.Sent++
	case item.Outcome == OutcomeSkipped:
		r.Skipped++
	}
}

// Failed builds the result of a run that could not select its items.
func Failed(job string, err error) Result {
	return Result{Job: job, Success: false, Error: err.Error()}
}

type resultJSON struct {
	Job       string `json:"job,omitempty"`
	Success   bool   `json:"success"`
	Processed *int   `json:"processed,omitempty"`
	Sent      *int   `json:"sent,omitempty"`
	Skipped   *int   `json:"skipped,omitempty"`
	Errors    *int   `json:"errors,omitempty"`
	Error     string `json:"error,omitempty"`
}

// MarshalJSON omits counts for failed runs.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Job: r.Job, Success: r.Success, Error: r.Error}
	if r.Success {
		out.Processed, out.Sent, out.Skipped, out.Errors = &r.Processed, &r.Sent, &r.Skipped, &r.Errors
	}
	return json.Marshal(out)
}

// ReminderPayload is everything an email composer needs to build a day-before reminder.
type ReminderPayload struct {
	BookingID       uuid.UUID
	BusinessID      uuid.UUID
	BusinessName    string
	BusinessEmail   string
	BusinessPhone   string
	BusinessAddress string
	CustomerName    string
	CustomerEmail   string
	ServiceName     string
	BookingDate     time.Time
	BookingTime     string
}

// ReminderComposer builds and delivers a reminder email from a payload.
type ReminderComposer interface {
	SendReminder(ctx context.Context, p ReminderPayload) error
}

// Job is one runnable notification job.
type Job interface {
	Name() string
	Run(ctx context.Context) Result
}
