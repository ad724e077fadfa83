package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Message is one outbound email. HTML is optional; Text is always sent as the plain part.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender is a pluggable email sending interface supporting per-tenant overrides.
// tenantID selects provider configuration; use uuid.Nil for global.
type Sender interface {
	Send(ctx context.Context, tenantID uuid.UUID, msg Message) error
}

var (
	// ErrNotConfigured means the selected provider lacks credentials or a sender address.
	ErrNotConfigured = errors.New("email provider not configured")
	// ErrQuotaExceeded means the provider quota window for the tenant is full.
	ErrQuotaExceeded = errors.New("email quota exceeded")
)
