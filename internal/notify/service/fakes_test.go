package service

import (
	"context"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	bkdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/bookings/domain"
	bdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/businesses/domain"
	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	evdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/events/domain"
	ndomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/domain"
)

type fakeRow struct {
	b              bkdomain.DueBooking
	reminderSent   bool
	feedbackSent   bool
	feedbackSentAt time.Time
	token          string
}

// fakeRepo applies the same predicates as the SQL queries.
type fakeRepo struct {
	mu      sync.Mutex
	rows    []*fakeRow
	listErr error
	markErr error
	onList  func()
}

func (r *fakeRepo) add(b bkdomain.DueBooking) *fakeRow {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := &fakeRow{b: b}
	r.rows = append(r.rows, row)
	return row
}

func (r *fakeRepo) row(id uuid.UUID) *fakeRow {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.b.ID == id {
			return row
		}
	}
	return nil
}

func (r *fakeRepo) ListDueReminders(_ context.Context, date time.Time) ([]bkdomain.DueBooking, error) {
	if r.onList != nil {
		r.onList()
	}
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []bkdomain.DueBooking
	for _, row := range r.rows {
		eligible := row.b.Status == bkdomain.StatusConfirmed || row.b.Status == bkdomain.StatusPending
		if eligible && row.b.BookingDate.Equal(date) && !row.reminderSent && row.b.CustomerEmail != "" {
			out = append(out, row.b)
		}
	}
	return out, nil
}

// wall drops the location, keeping the clock reading, like a timestamp without time zone.
func wall(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

func (r *fakeRepo) ListDueFeedback(_ context.Context, w bkdomain.FeedbackWindow, limit int) ([]bkdomain.DueBooking, error) {
	if r.onList != nil {
		r.onList()
	}
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	start, end := wall(w.Start), wall(w.End)
	var out []bkdomain.DueBooking
	for _, row := range r.rows {
		d := row.b.BookingDate
		inWindow := !d.Before(start) && d.Before(end)
		if row.b.Status == bkdomain.StatusCompleted && !row.feedbackSent && inWindow && row.b.CustomerEmail != "" {
			b := row.b
			b.FeedbackToken = row.token
			out = append(out, b)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeRepo) MarkReminderSent(_ context.Context, id uuid.UUID) error {
	if r.markErr != nil {
		return r.markErr
	}
	if row := r.row(id); row != nil {
		row.reminderSent = true
	}
	return nil
}

func (r *fakeRepo) EnsureFeedbackToken(_ context.Context, id uuid.UUID, candidate string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var target *fakeRow
	for _, row := range r.rows {
		if row.b.ID == id {
			target = row
		}
	}
	if target == nil {
		return "", nil
	}
	if target.token != "" {
		return target.token, nil
	}
	for _, row := range r.rows {
		if row.token == candidate {
			return "", bkdomain.ErrTokenConflict
		}
	}
	target.token = candidate
	return candidate, nil
}

func (r *fakeRepo) MarkFeedbackSent(_ context.Context, id uuid.UUID, at time.Time) error {
	if r.markErr != nil {
		return r.markErr
	}
	if row := r.row(id); row != nil && !row.feedbackSent {
		row.feedbackSent = true
		row.feedbackSentAt = at
	}
	return nil
}

// scriptedSender fails for the recipients listed in failFor.
type scriptedSender struct {
	mu      sync.Mutex
	failFor map[string]error
	sent    []edomain.Message
	tenants []uuid.UUID
	at      []time.Time
}

func (s *scriptedSender) Send(_ context.Context, tenantID uuid.UUID, msg edomain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.at = append(s.at, time.Now())
	if err := s.failFor[msg.To]; err != nil {
		return err
	}
	s.sent = append(s.sent, msg)
	s.tenants = append(s.tenants, tenantID)
	return nil
}

type fakeComposer struct {
	failFor  map[string]error
	payloads []ndomain.ReminderPayload
}

func (c *fakeComposer) SendReminder(_ context.Context, p ndomain.ReminderPayload) error {
	if err := c.failFor[p.CustomerEmail]; err != nil {
		return err
	}
	c.payloads = append(c.payloads, p)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []evdomain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e evdomain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func newBusiness(settings []byte) bdomain.Business {
	return bdomain.Business{
		ID:       uuid.New(),
		Name:     gofakeit.Company(),
		Email:    gofakeit.Email(),
		Phone:    gofakeit.Phone(),
		Address:  gofakeit.Street(),
		Settings: bdomain.ParseBookingSettings(settings),
	}
}

func newBooking(biz bdomain.Business, status bkdomain.Status, date time.Time, email string) bkdomain.DueBooking {
	return bkdomain.DueBooking{
		ID:            uuid.New(),
		Status:        status,
		BookingDate:   date,
		BookingTime:   "10:30",
		CustomerName:  gofakeit.Name(),
		CustomerEmail: email,
		CustomerPhone: gofakeit.Phone(),
		ServiceName:   gofakeit.JobTitle(),
		Business:      biz,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
