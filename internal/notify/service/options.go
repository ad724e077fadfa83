package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	evdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/events/domain"
)

// Options carries the run parameters shared by both jobs.
type Options struct {
	// Location is the business timezone used for "tomorrow" and the feedback window.
	Location *time.Location
	// SendInterval is the minimum spacing between two sends of one run.
	SendInterval time.Duration
	// BatchSize caps the feedback selection.
	BatchSize int
	// PublicBaseURL and Locale are defaults; tenants may override both in settings.
	PublicBaseURL string
	Locale        string
	Events        evdomain.Publisher
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 50
	}
	if o.SendInterval < 0 {
		o.SendInterval = 0
	}
	if o.Locale == "" {
		o.Locale = "en"
	}
	return o
}

// publish records an audit event. Publisher failures never affect the run.
func publish(ctx context.Context, p evdomain.Publisher, e evdomain.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("event", e.Type).Msg("publish event failed")
	}
}
