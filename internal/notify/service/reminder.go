package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	bkdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/bookings/domain"
	evdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/events/domain"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/metrics"
	ndomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/domain"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/platform/ratelimit"
)

var _ ndomain.Job = (*ReminderJob)(nil)

// ReminderJob sends day-before reminders. Every selected booking is flagged once it reaches a
// terminal outcome, including tenants that opted out and failed sends, so no booking is
// reminded twice.
type ReminderJob struct {
	repo     bkdomain.Repository
	composer ndomain.ReminderComposer
	opts     Options
	now      func() time.Time
}

func NewReminderJob(repo bkdomain.Repository, composer ndomain.ReminderComposer, opts Options) *ReminderJob {
	return &ReminderJob{repo: repo, composer: composer, opts: opts.withDefaults(), now: time.Now}
}

func (j *ReminderJob) Name() string { return ndomain.JobReminder }

func (j *ReminderJob) Run(ctx context.Context) ndomain.Result {
	start := j.now()
	l := log.Ctx(ctx).With().Str("job", ndomain.JobReminder).Logger()
	ctx = l.WithContext(ctx)

	date := ReminderDate(start, j.opts.Location)
	due, err := j.repo.ListDueReminders(ctx, date)
	if err != nil {
		l.Error().Err(err).Str("date", date.Format(time.DateOnly)).Msg("reminder selection failed")
		metrics.ObserveJobRun(ndomain.JobReminder, false, time.Since(start))
		return ndomain.Failed(ndomain.JobReminder, err)
	}

	// selected items are always processed to completion
	ctx = context.WithoutCancel(ctx)
	pacer := ratelimit.NewPacer(j.opts.SendInterval)
	res := ndomain.Result{Job: ndomain.JobReminder, Success: true}
	for _, b := range due {
		item := j.process(ctx, pacer, b)
		metrics.IncJobItem(ndomain.JobReminder, string(item.Outcome))
		res.Add(item)
	}

	metrics.ObserveJobRun(ndomain.JobReminder, true, time.Since(start))
	l.Info().
		Str("date", date.Format(time.DateOnly)).
		Int("processed", res.Processed).
		Int("sent", res.Sent).
		Int("skipped", res.Skipped).
		Int("errors", res.Errors).
		Dur("took", time.Since(start)).
		Msg("reminder run finished")
	return res
}

func (j *ReminderJob) process(ctx context.Context, pacer *ratelimit.Pacer, b bkdomain.DueBooking) ndomain.ItemResult {
	l := log.Ctx(ctx).With().Str("booking_id", b.ID.String()).Str("tenant_id", b.Business.ID.String()).Logger()
	item := ndomain.ItemResult{BookingID: b.ID}
	ev := evdomain.Event{TenantID: b.Business.ID, BookingID: b.ID, Meta: map[string]string{}}

	if !b.Business.Settings.RemindersEnabledOrDefault() {
		item.Outcome = ndomain.OutcomeSkipped
		ev.Type, ev.Meta["reason"] = evdomain.TypeReminderSkipped, "reminders_disabled"
	} else {
		_ = pacer.Wait(ctx)
		if err := j.composer.SendReminder(ctx, payloadFor(b)); err != nil {
			l.Warn().Err(err).Msg("reminder send failed")
			item.Outcome, item.Err = ndomain.OutcomeFailed, err
			ev.Type, ev.Meta["error"] = evdomain.TypeReminderFailed, err.Error()
		} else {
			item.Outcome = ndomain.OutcomeSent
			ev.Type = evdomain.TypeReminderSent
		}
	}

	if err := j.repo.MarkReminderSent(ctx, b.ID); err != nil {
		l.Error().Err(err).Str("outcome", string(item.Outcome)).Msg("could not flag reminder; booking may be picked again")
		if item.Err == nil {
			item.Err = err
		}
	}
	ev.Time = j.now()
	publish(ctx, j.opts.Events, ev)
	return item
}

func payloadFor(b bkdomain.DueBooking) ndomain.ReminderPayload {
	return ndomain.ReminderPayload{
		BookingID:       b.ID,
		BusinessID:      b.Business.ID,
		BusinessName:    b.Business.Name,
		BusinessEmail:   b.Business.Email,
		BusinessPhone:   b.Business.Phone,
		BusinessAddress: b.Business.Address,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		ServiceName:     b.ServiceName,
		BookingDate:     b.BookingDate,
		BookingTime:     b.BookingTime,
	}
}
