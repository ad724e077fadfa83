package service

import (
	"context"

	"github.com/google/uuid"

	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	ndomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/domain"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/template"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

var _ ndomain.ReminderComposer = (*EmailComposer)(nil)

// EmailComposer turns reminder payloads into emails using the tenant's reminder template.
type EmailComposer struct {
	sender    edomain.Sender
	templates *template.Set
	settings  sdomain.Service
	locale    string
}

// NewEmailComposer builds a composer. settings may be nil.
func NewEmailComposer(sender edomain.Sender, templates *template.Set, settings sdomain.Service, locale string) *EmailComposer {
	return &EmailComposer{sender: sender, templates: templates, settings: settings, locale: locale}
}

func (c *EmailComposer) SendReminder(ctx context.Context, p ndomain.ReminderPayload) error {
	locale := tenantString(ctx, c.settings, sdomain.KeyLocale, p.BusinessID, c.locale)
	values := map[string]string{
		"businessName":    p.BusinessName,
		"businessEmail":   p.BusinessEmail,
		"businessPhone":   p.BusinessPhone,
		"businessAddress": p.BusinessAddress,
		"customerName":    p.CustomerName,
		"serviceName":     p.ServiceName,
		"bookingDate":     template.FormatLongDate(p.BookingDate, locale),
		"bookingTime":     template.FormatTime(p.BookingTime, locale),
	}
	tpl := c.templates.Reminder(ctx, p.BusinessID)
	return c.sender.Send(ctx, p.BusinessID, renderMessage(tpl, p.CustomerEmail, values))
}

func renderMessage(tpl template.Template, to string, values map[string]string) edomain.Message {
	html := template.Render(tpl.Body, values)
	return edomain.Message{
		To:      to,
		Subject: template.Render(tpl.Subject, values),
		HTML:    html,
		Text:    template.PlainText(html),
	}
}

// tenantString reads a tenant-overridable setting, falling back to def on any error.
func tenantString(ctx context.Context, s sdomain.Service, key string, tenantID uuid.UUID, def string) string {
	if s == nil {
		return def
	}
	v, err := s.GetString(ctx, key, &tenantID, def)
	if err != nil {
		return def
	}
	return v
}
