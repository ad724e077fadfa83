package notify

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	brepo "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/bookings/repository"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/config"
	emailsvc "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/service"
	evsvc "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/events/service"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/metrics"
	ctrl "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/controller"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/scheduler"
	svc "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/service"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/template"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/platform/ratelimit"
	srepo "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/repository"
	ssvc "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/service"
)

// Module is the wired notification pipeline.
type Module struct {
	Reminder *scheduler.Exclusive
	Feedback *scheduler.Exclusive

	cfg   config.Config
	store ratelimit.Store
	pings map[string]metrics.PingFunc
}

// New wires both jobs. rc may be nil, in which case quotas and the trigger rate limit
// are tracked in process memory.
func New(pg *pgxpool.Pool, rc *redis.Client, cfg config.Config) (*Module, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("notify: %w", err)
	}
	settings := ssvc.New(srepo.New(pg))

	var store ratelimit.Store = ratelimit.NewMemoryStore()
	pings := map[string]metrics.PingFunc{"postgres": pg.Ping, "redis": nil}
	if rc != nil {
		store = ratelimit.NewRedisStore(rc)
		pings["redis"] = func(ctx context.Context) error { return rc.Ping(ctx).Err() }
	}

	sender := emailsvc.NewQuota(emailsvc.NewRouter(settings, cfg), store, settings, cfg.EmailRateLimit, cfg.EmailRateWindow)
	templates, err := template.LoadSet(settings)
	if err != nil {
		return nil, fmt.Errorf("notify: %w", err)
	}

	repo := brepo.New(pg)
	opts := svc.Options{
		Location:      loc,
		SendInterval:  cfg.SendInterval,
		BatchSize:     cfg.FeedbackBatchSize,
		PublicBaseURL: cfg.PublicBaseURL,
		Locale:        cfg.Locale,
		Events:        evsvc.NewLogger(),
	}
	composer := svc.NewEmailComposer(sender, templates, settings, cfg.Locale)

	return &Module{
		Reminder: scheduler.NewExclusive(svc.NewReminderJob(repo, composer, opts)),
		Feedback: scheduler.NewExclusive(svc.NewFeedbackJob(repo, sender, templates, settings, opts)),
		cfg:      cfg,
		store:    store,
		pings:    pings,
	}, nil
}

// Job returns the job registered under name ("reminder" or "feedback").
func (m *Module) Job(name string) (*scheduler.Exclusive, bool) {
	switch name {
	case m.Reminder.Name():
		return m.Reminder, true
	case m.Feedback.Name():
		return m.Feedback, true
	}
	return nil, false
}

// Scheduler builds a cron scheduler for both jobs using the configured expressions.
func (m *Module) Scheduler(lg zerolog.Logger) (*scheduler.Scheduler, error) {
	loc, err := m.cfg.Location()
	if err != nil {
		return nil, err
	}
	s := scheduler.New(loc, lg)
	if err := s.Add(m.cfg.ReminderSchedule, m.Reminder); err != nil {
		return nil, err
	}
	if err := s.Add(m.cfg.FeedbackSchedule, m.Feedback); err != nil {
		return nil, err
	}
	return s, nil
}

// Register mounts /healthz and the manual trigger endpoint.
func (m *Module) Register(e *echo.Echo) {
	jobs := map[string]ctrl.Runner{
		m.Reminder.Name(): m.Reminder,
		m.Feedback.Name(): m.Feedback,
	}
	ctrl.New(jobs, m.cfg.AdminToken).
		WithHealth(m.pings).
		WithRateLimit(m.store).
		Register(e)
}
