package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/events/domain"
)

// Logger is a Publisher that writes events to the context logger.
// Swap for a queue-backed publisher if audit events need to leave the process.
type Logger struct{}

func NewLogger() *Logger { return &Logger{} }

func (l *Logger) Publish(ctx context.Context, e domain.Event) error {
	log.Ctx(ctx).Info().
		Str("type", e.Type).
		Str("tenant_id", e.TenantID.String()).
		Str("booking_id", e.BookingID.String()).
		Fields(map[string]any{"meta": e.Meta}).
		Time("ts", e.Time).
		Msg("event")
	return nil
}
