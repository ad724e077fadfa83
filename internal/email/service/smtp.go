package service

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strconv"

	"github.com/google/uuid"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/config"
	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

// Ensure SMTP implements domain.Sender
var _ edomain.Sender = (*SMTP)(nil)

type SMTP struct {
	cfg      config.Config
	settings sdomain.Service
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(settings sdomain.Service, cfg config.Config) *SMTP {
	return &SMTP{settings: settings, cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTP) Send(ctx context.Context, tenantID uuid.UUID, msg edomain.Message) error {
	host, _ := s.settings.GetString(ctx, sdomain.KeySMTPHost, &tenantID, s.cfg.SMTPHost)
	from, _ := s.settings.GetString(ctx, sdomain.KeySMTPFrom, &tenantID, s.cfg.SMTPFrom)
	username, _ := s.settings.GetString(ctx, sdomain.KeySMTPUsername, &tenantID, s.cfg.SMTPUsername)
	password, _ := s.settings.GetString(ctx, sdomain.KeySMTPPassword, &tenantID, s.cfg.SMTPPassword)
	port, _ := s.settings.GetInt(ctx, sdomain.KeySMTPPort, &tenantID, s.cfg.SMTPPort)
	if host == "" || from == "" {
		return fmt.Errorf("smtp: %w", edomain.ErrNotConfigured)
	}

	body, err := buildMIME(from, msg)
	if err != nil {
		return fmt.Errorf("smtp: build message: %w", err)
	}
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	addr := host + ":" + strconv.Itoa(port)
	if err := s.sendMail(addr, auth, from, []string{msg.To}, body); err != nil {
		return fmt.Errorf("smtp send to %s: %w", addr, err)
	}
	return nil
}

// buildMIME renders a text/plain message, or multipart/alternative when HTML is present.
func buildMIME(from string, msg edomain.Message) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTML == "" {
		buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		buf.WriteString(msg.Text)
		buf.WriteString("\r\n")
		return buf.Bytes(), nil
	}

	mw := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", mw.Boundary())
	parts := []struct{ ctype, body string }{
		{"text/plain; charset=utf-8", msg.Text},
		{"text/html; charset=utf-8", msg.HTML},
	}
	for _, p := range parts {
		if p.body == "" {
			continue
		}
		w, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {p.ctype}})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
