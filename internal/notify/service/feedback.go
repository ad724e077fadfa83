package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	bkdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/bookings/domain"
	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	evdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/events/domain"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/metrics"
	ndomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/domain"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/template"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/token"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/platform/ratelimit"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

var _ ndomain.Job = (*FeedbackJob)(nil)

// FeedbackJob asks customers of recently completed bookings for feedback. A booking is
// flagged only after the email was accepted, so failed sends are retried on the next run.
type FeedbackJob struct {
	repo      bkdomain.Repository
	sender    edomain.Sender
	templates *template.Set
	settings  sdomain.Service
	opts      Options
	now       func() time.Time
	newToken  func() (string, error)
}

// NewFeedbackJob builds the job. settings may be nil.
func NewFeedbackJob(repo bkdomain.Repository, sender edomain.Sender, templates *template.Set, settings sdomain.Service, opts Options) *FeedbackJob {
	return &FeedbackJob{
		repo:      repo,
		sender:    sender,
		templates: templates,
		settings:  settings,
		opts:      opts.withDefaults(),
		now:       time.Now,
		newToken:  token.New,
	}
}

func (j *FeedbackJob) Name() string { return ndomain.JobFeedback }

func (j *FeedbackJob) Run(ctx context.Context) ndomain.Result {
	start := j.now()
	l := log.Ctx(ctx).With().Str("job", ndomain.JobFeedback).Logger()
	ctx = l.WithContext(ctx)

	window := FeedbackWindow(start.In(j.opts.Location))
	due, err := j.repo.ListDueFeedback(ctx, window, j.opts.BatchSize)
	if err != nil {
		l.Error().Err(err).Msg("feedback selection failed")
		metrics.ObserveJobRun(ndomain.JobFeedback, false, time.Since(start))
		return ndomain.Failed(ndomain.JobFeedback, err)
	}

	ctx = context.WithoutCancel(ctx)
	pacer := ratelimit.NewPacer(j.opts.SendInterval)
	res := ndomain.Result{Job: ndomain.JobFeedback, Success: true}
	for _, b := range due {
		item := j.process(ctx, pacer, b)
		metrics.IncJobItem(ndomain.JobFeedback, string(item.Outcome))
		res.Add(item)
	}

	metrics.ObserveJobRun(ndomain.JobFeedback, true, time.Since(start))
	l.Info().
		Time("window_start", window.Start).
		Time("window_end", window.End).
		Int("processed", res.Processed).
		Int("sent", res.Sent).
		Int("errors", res.Errors).
		Dur("took", time.Since(start)).
		Msg("feedback run finished")
	return res
}

func (j *FeedbackJob) process(ctx context.Context, pacer *ratelimit.Pacer, b bkdomain.DueBooking) ndomain.ItemResult {
	l := log.Ctx(ctx).With().Str("booking_id", b.ID.String()).Str("tenant_id", b.Business.ID.String()).Logger()
	tenant := b.Business.ID

	fail := func(err error) ndomain.ItemResult {
		l.Warn().Err(err).Msg("feedback request failed")
		publish(ctx, j.opts.Events, evdomain.Event{
			Type: evdomain.TypeFeedbackFailed, TenantID: tenant, BookingID: b.ID,
			Meta: map[string]string{"error": err.Error()}, Time: j.now(),
		})
		return ndomain.ItemResult{BookingID: b.ID, Outcome: ndomain.OutcomeFailed, Err: err}
	}

	tok, err := j.issueToken(ctx, b)
	if err != nil {
		return fail(err)
	}
	base := tenantString(ctx, j.settings, sdomain.KeyPublicBaseURL, tenant, j.opts.PublicBaseURL)
	link, err := FeedbackURL(base, tok)
	if err != nil {
		return fail(err)
	}

	locale := tenantString(ctx, j.settings, sdomain.KeyLocale, tenant, j.opts.Locale)
	values := map[string]string{
		"businessName": b.Business.Name,
		"customerName": b.CustomerName,
		"serviceName":  b.ServiceName,
		"bookingDate":  template.FormatLongDate(b.BookingDate, locale),
		"bookingTime":  template.FormatTime(b.BookingTime, locale),
		"feedbackUrl":  link,
	}
	msg := renderMessage(j.templates.Feedback(ctx, tenant), b.CustomerEmail, values)

	_ = pacer.Wait(ctx)
	if err := j.sender.Send(ctx, tenant, msg); err != nil {
		return fail(fmt.Errorf("send feedback request: %w", err))
	}

	item := ndomain.ItemResult{BookingID: b.ID, Outcome: ndomain.OutcomeSent}
	if err := j.repo.MarkFeedbackSent(ctx, b.ID, j.now()); err != nil {
		// the email went out; the next run may send it again
		l.Error().Err(err).Msg("could not flag feedback as sent")
		item.Err = err
	}
	publish(ctx, j.opts.Events, evdomain.Event{
		Type: evdomain.TypeFeedbackSent, TenantID: tenant, BookingID: b.ID, Time: j.now(),
	})
	return item
}

// issueToken returns the booking's persisted token, storing a new one when it has none.
// A collision with another booking's token is retried once with a fresh candidate.
func (j *FeedbackJob) issueToken(ctx context.Context, b bkdomain.DueBooking) (string, error) {
	if b.FeedbackToken != "" {
		return b.FeedbackToken, nil
	}
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		candidate, err := j.newToken()
		if err != nil {
			return "", err
		}
		tok, err := j.repo.EnsureFeedbackToken(ctx, b.ID, candidate)
		if err == nil {
			return tok, nil
		}
		lastErr = err
		if !errors.Is(err, bkdomain.ErrTokenConflict) {
			break
		}
	}
	return "", fmt.Errorf("issue feedback token: %w", lastErr)
}
