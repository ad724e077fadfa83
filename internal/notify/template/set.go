package template

import (
	"context"
	"embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

//go:embed defaults/*.html
var defaultsFS embed.FS

const (
	defaultFeedbackSubject = "How was your visit to {{businessName}}?"
	defaultReminderSubject = "Reminder: {{serviceName}} at {{businessName}} tomorrow"
)

// Template is an unrendered subject and HTML body pair.
type Template struct {
	Subject string
	Body    string
}

// Set holds the default templates and resolves per-tenant overrides from settings.
// Build it once at startup and pass it to the jobs.
type Set struct {
	feedback Template
	reminder Template
	settings sdomain.Service
}

// LoadSet reads the embedded defaults. settings may be nil, in which case no overrides apply.
func LoadSet(settings sdomain.Service) (*Set, error) {
	fb, err := defaultsFS.ReadFile("defaults/feedback.html")
	if err != nil {
		return nil, fmt.Errorf("load feedback template: %w", err)
	}
	rm, err := defaultsFS.ReadFile("defaults/reminder.html")
	if err != nil {
		return nil, fmt.Errorf("load reminder template: %w", err)
	}
	return &Set{
		feedback: Template{Subject: defaultFeedbackSubject, Body: string(fb)},
		reminder: Template{Subject: defaultReminderSubject, Body: string(rm)},
		settings: settings,
	}, nil
}

// Feedback returns the feedback request template for tenantID.
func (s *Set) Feedback(ctx context.Context, tenantID uuid.UUID) Template {
	return s.resolve(ctx, tenantID, s.feedback, sdomain.KeyFeedbackSubject, sdomain.KeyFeedbackTemplate)
}

// Reminder returns the day-before reminder template for tenantID.
func (s *Set) Reminder(ctx context.Context, tenantID uuid.UUID) Template {
	return s.resolve(ctx, tenantID, s.reminder, sdomain.KeyReminderSubject, sdomain.KeyReminderTemplate)
}

// resolve never fails: a settings error falls back to the default text.
func (s *Set) resolve(ctx context.Context, tenantID uuid.UUID, def Template, subjectKey, bodyKey string) Template {
	if s.settings == nil {
		return def
	}
	out := def
	var err error
	if out.Subject, err = s.settings.GetString(ctx, subjectKey, &tenantID, def.Subject); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", subjectKey).Msg("template override lookup failed")
	}
	if out.Body, err = s.settings.GetString(ctx, bodyKey, &tenantID, def.Body); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", bodyKey).Msg("template override lookup failed")
	}
	return out
}
