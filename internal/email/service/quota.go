package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/metrics"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/platform/ratelimit"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

var _ edomain.Sender = (*Quota)(nil)

// providerNamer is implemented by Router; used only for metric labels.
type providerNamer interface {
	Provider(ctx context.Context, tenantID uuid.UUID) string
}

// Quota enforces a per-tenant fixed-window cap on outbound emails in front of another Sender.
// Limit and window come from settings (tenant override) with the configured defaults.
// A limit of 0 disables the quota. Store errors fail open.
type Quota struct {
	next     edomain.Sender
	store    ratelimit.Store
	settings sdomain.Service
	limit    int
	window   time.Duration
}

func NewQuota(next edomain.Sender, store ratelimit.Store, settings sdomain.Service, limit int, window time.Duration) *Quota {
	return &Quota{next: next, store: store, settings: settings, limit: limit, window: window}
}

func (q *Quota) Send(ctx context.Context, tenantID uuid.UUID, msg edomain.Message) error {
	limit, _ := q.settings.GetInt(ctx, sdomain.KeyEmailRateLimit, &tenantID, q.limit)
	if limit <= 0 {
		return q.next.Send(ctx, tenantID, msg)
	}
	window, _ := q.settings.GetDuration(ctx, sdomain.KeyEmailRateWindow, &tenantID, q.window)
	if window <= 0 {
		window = time.Minute
	}

	allowed, retryAfter, err := q.store.Allow(ctx, "email:ten:"+tenantID.String(), limit, window)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("tenant_id", tenantID.String()).Msg("email quota store unavailable, sending anyway")
		return q.next.Send(ctx, tenantID, msg)
	}
	if !allowed {
		provider := "unknown"
		if pn, ok := q.next.(providerNamer); ok {
			provider = pn.Provider(ctx, tenantID)
		}
		metrics.IncEmailQuotaExceeded(provider)
		return fmt.Errorf("%w: tenant %s, retry after %s", edomain.ErrQuotaExceeded, tenantID, retryAfter.Round(time.Second))
	}
	return q.next.Send(ctx, tenantID, msg)
}
