package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/config"
	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Ensure Brevo implements domain.Sender
var _ edomain.Sender = (*Brevo)(nil)

type Brevo struct {
	cfg      config.Config
	settings sdomain.Service
	http     *http.Client
}

func NewBrevo(settings sdomain.Service, cfg config.Config) *Brevo {
	return &Brevo{settings: settings, cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}
}

type brevoAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoEmail struct {
	To          []brevoAddress `json:"to"`
	Sender      brevoAddress   `json:"sender"`
	Subject     string         `json:"subject"`
	TextContent string         `json:"textContent,omitempty"`
	HTMLContent string         `json:"htmlContent,omitempty"`
}

func (b *Brevo) Send(ctx context.Context, tenantID uuid.UUID, msg edomain.Message) error {
	apiKey, _ := b.settings.GetString(ctx, sdomain.KeyBrevoAPIKey, &tenantID, b.cfg.BrevoAPIKey)
	sender, _ := b.settings.GetString(ctx, sdomain.KeyBrevoSender, &tenantID, b.cfg.BrevoSender)
	if apiKey == "" || sender == "" {
		return fmt.Errorf("brevo: %w", edomain.ErrNotConfigured)
	}
	payload := brevoEmail{
		To:          []brevoAddress{{Email: msg.To}},
		Sender:      brevoAddress{Email: sender},
		Subject:     msg.Subject,
		TextContent: msg.Text,
		HTMLContent: msg.HTML,
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("brevo: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", apiKey)
	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("brevo: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("brevo send failed: %s: %s", resp.Status, bytes.TrimSpace(detail))
	}
	return nil
}
