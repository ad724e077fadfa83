package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/bookings/domain"
	bdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/businesses/domain"
	db "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/db/sqlc"
)

const uniqueViolation = "23505"

var _ domain.Repository = (*SQLCRepository)(nil)

type SQLCRepository struct {
	q *db.Queries
}

func New(pg *pgxpool.Pool) *SQLCRepository {
	return &SQLCRepository{q: db.New(pg)}
}

// NewWithDB builds the repository on any sqlc DBTX (a pool, a conn or a tx).
func NewWithDB(d db.DBTX) *SQLCRepository {
	return &SQLCRepository{q: db.New(d)}
}

func toPgUUID(u uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: u, Valid: true}
}

func toPgDate(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// toPgTimestamp keeps the wall clock of t; booking_date is compared as a local timestamp.
func toPgTimestamp(t time.Time) pgtype.Timestamp {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return pgtype.Timestamp{Time: time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC), Valid: true}
}

func fromPgDate(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	y, m, day := d.Time.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func fromPgTime(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}
	minutes := t.Microseconds / int64(time.Minute/time.Microsecond)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func text(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func statusStrings(in []domain.Status) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func (r *SQLCRepository) ListDueReminders(ctx context.Context, date time.Time) ([]domain.DueBooking, error) {
	rows, err := r.q.ListDueReminders(ctx, db.ListDueRemindersParams{
		BookingDate: toPgDate(date),
		Statuses:    statusStrings(domain.ReminderStatuses),
	})
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	out := make([]domain.DueBooking, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DueBooking{
			ID:            uuid.UUID(row.ID.Bytes),
			Status:        domain.Status(row.Status),
			BookingDate:   fromPgDate(row.BookingDate),
			BookingTime:   fromPgTime(row.BookingTime),
			CustomerName:  row.CustomerName,
			CustomerEmail: text(row.CustomerEmail),
			CustomerPhone: text(row.CustomerPhone),
			Notes:         text(row.Notes),
			ServiceName:   text(row.ServiceName),
			Business: bdomain.Business{
				ID:       uuid.UUID(row.BusinessID.Bytes),
				Name:     row.BusinessName,
				Email:    text(row.BusinessEmail),
				Phone:    text(row.BusinessPhone),
				Address:  text(row.BusinessAddress),
				Settings: bdomain.ParseBookingSettings(row.BookingSettings),
			},
		})
	}
	return out, nil
}

func (r *SQLCRepository) ListDueFeedback(ctx context.Context, window domain.FeedbackWindow, limit int) ([]domain.DueBooking, error) {
	rows, err := r.q.ListDueFeedback(ctx, db.ListDueFeedbackParams{
		WindowStart: toPgTimestamp(window.Start),
		WindowEnd:   toPgTimestamp(window.End),
		BatchSize:   int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list due feedback: %w", err)
	}
	out := make([]domain.DueBooking, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DueBooking{
			ID:            uuid.UUID(row.ID.Bytes),
			Status:        domain.Status(row.Status),
			BookingDate:   fromPgDate(row.BookingDate),
			BookingTime:   fromPgTime(row.BookingTime),
			CustomerName:  row.CustomerName,
			CustomerEmail: text(row.CustomerEmail),
			CustomerPhone: text(row.CustomerPhone),
			Notes:         text(row.Notes),
			ServiceName:   text(row.ServiceName),
			FeedbackToken: text(row.FeedbackToken),
			Business: bdomain.Business{
				ID:      uuid.UUID(row.BusinessID.Bytes),
				Name:    row.BusinessName,
				Email:   text(row.BusinessEmail),
				Phone:   text(row.BusinessPhone),
				Address: text(row.BusinessAddress),
			},
		})
	}
	return out, nil
}

func (r *SQLCRepository) MarkReminderSent(ctx context.Context, id uuid.UUID) error {
	if err := r.q.MarkReminderSent(ctx, toPgUUID(id)); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	return nil
}

func (r *SQLCRepository) EnsureFeedbackToken(ctx context.Context, id uuid.UUID, candidate string) (string, error) {
	tok, err := r.q.SetFeedbackToken(ctx, db.SetFeedbackTokenParams{
		Token: pgtype.Text{String: candidate, Valid: candidate != ""},
		ID:    toPgUUID(id),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", domain.ErrTokenConflict
		}
		return "", fmt.Errorf("set feedback token: %w", err)
	}
	if !tok.Valid || tok.String == "" {
		return "", fmt.Errorf("set feedback token: booking %s has no token after update", id)
	}
	return tok.String, nil
}

// MarkFeedbackSent only touches rows still unflagged, so feedback_sent_at records the
// first successful delivery.
func (r *SQLCRepository) MarkFeedbackSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := r.q.MarkFeedbackSent(ctx, db.MarkFeedbackSentParams{
		SentAt: pgtype.Timestamptz{Time: at, Valid: true},
		ID:     toPgUUID(id),
	}); err != nil {
		return fmt.Errorf("mark feedback sent: %w", err)
	}
	return nil
}
