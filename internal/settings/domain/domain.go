package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service provides typed access to application settings with per-tenant override.
type Service interface {
	GetString(ctx context.Context, key string, tenantID *uuid.UUID, def string) (string, error)
	GetDuration(ctx context.Context, key string, tenantID *uuid.UUID, def time.Duration) (time.Duration, error)
	GetInt(ctx context.Context, key string, tenantID *uuid.UUID, def int) (int, error)
}

// Repository abstracts storage of app settings.
type Repository interface {
	// Get returns (value, found, err) for an exact key, preferring the tenant row over the global one.
	Get(ctx context.Context, key string, tenantID *uuid.UUID) (string, bool, error)
	// Upsert stores a key for an optional tenant (nil = global).
	Upsert(ctx context.Context, key string, tenantID *uuid.UUID, value string, secret bool) error
}

// Common keys
const (
	KeyPublicBaseURL = "app.public_base_url"
	KeyLocale        = "notify.locale"

	KeyEmailProvider = "email.provider"
	KeySMTPHost      = "email.smtp.host"
	KeySMTPPort      = "email.smtp.port"
	KeySMTPUsername  = "email.smtp.username"
	KeySMTPPassword  = "email.smtp.password"
	KeySMTPFrom      = "email.smtp.from"
	KeyBrevoAPIKey   = "email.brevo.api_key"
	KeyBrevoSender   = "email.brevo.sender"

	// Outbound provider quota. Window uses Go duration strings ("1m", "1h").
	KeyEmailRateLimit  = "email.ratelimit.limit"
	KeyEmailRateWindow = "email.ratelimit.window"

	// Template overrides. Values are the full template text with {{placeholders}}.
	KeyFeedbackSubject  = "notify.feedback.subject"
	KeyFeedbackTemplate = "notify.feedback.template"
	KeyReminderSubject  = "notify.reminder.subject"
	KeyReminderTemplate = "notify.reminder.template"
)

// secretKeys are stored with is_secret so they can be masked by any reader.
var secretKeys = map[string]bool{
	KeySMTPPassword: true,
	KeyBrevoAPIKey:  true,
}

// IsSecret reports whether key holds a credential.
func IsSecret(key string) bool { return secretKeys[key] }
