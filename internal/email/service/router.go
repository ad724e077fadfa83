package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/config"
	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

// Ensure Router implements domain.Sender
var _ edomain.Sender = (*Router)(nil)

const (
	ProviderSMTP  = "smtp"
	ProviderBrevo = "brevo"
)

// Router picks the provider per tenant from settings, falling back to config.
type Router struct {
	cfg      config.Config
	settings sdomain.Service
	smtp     edomain.Sender
	brevo    edomain.Sender
}

func NewRouter(settings sdomain.Service, cfg config.Config) *Router {
	return &Router{cfg: cfg, settings: settings, smtp: NewSMTP(settings, cfg), brevo: NewBrevo(settings, cfg)}
}

// Provider returns the provider name used for tenantID.
func (r *Router) Provider(ctx context.Context, tenantID uuid.UUID) string {
	prov, _ := r.settings.GetString(ctx, sdomain.KeyEmailProvider, &tenantID, r.cfg.EmailProvider)
	if strings.EqualFold(prov, ProviderBrevo) {
		return ProviderBrevo
	}
	return ProviderSMTP
}

func (r *Router) Send(ctx context.Context, tenantID uuid.UUID, msg edomain.Message) error {
	if r.Provider(ctx, tenantID) == ProviderBrevo {
		return r.brevo.Send(ctx, tenantID, msg)
	}
	return r.smtp.Send(ctx, tenantID, msg)
}
