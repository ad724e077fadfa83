package service

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/config"
	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

type sentMail struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	body string
}

func newTestSMTP(t *testing.T, vals map[string]string, sendErr error) (*SMTP, *sentMail) {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	s := NewSMTP(mockSettings{vals: vals}, cfg)
	sent := &sentMail{}
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		*sent = sentMail{addr: addr, auth: a, from: from, to: to, body: string(msg)}
		return sendErr
	}
	return s, sent
}

func TestSMTP_TenantOverrides(t *testing.T) {
	s, sent := newTestSMTP(t, map[string]string{
		sdomain.KeySMTPHost: "mail.salon.test",
		sdomain.KeySMTPPort: "2525",
		sdomain.KeySMTPFrom: "citas@salon.test",
	}, nil)

	err := s.Send(context.Background(), uuid.New(), edomain.Message{To: "ana@example.com", Subject: "Hola", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "mail.salon.test:2525", sent.addr)
	assert.Equal(t, "citas@salon.test", sent.from)
	assert.Equal(t, []string{"ana@example.com"}, sent.to)
	assert.Nil(t, sent.auth)
	assert.Contains(t, sent.body, "Content-Type: text/plain; charset=utf-8")
}

func TestSMTP_UsesAuthWhenUsernameSet(t *testing.T) {
	s, sent := newTestSMTP(t, map[string]string{sdomain.KeySMTPUsername: "user", sdomain.KeySMTPPassword: "pw"}, nil)
	require.NoError(t, s.Send(context.Background(), uuid.New(), edomain.Message{To: "a@b.com", Text: "x"}))
	assert.NotNil(t, sent.auth)
}

func TestSMTP_WrapsTransportError(t *testing.T) {
	s, _ := newTestSMTP(t, nil, errors.New("dial tcp: refused"))
	err := s.Send(context.Background(), uuid.New(), edomain.Message{To: "a@b.com", Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")
}

func TestSMTP_NotConfigured(t *testing.T) {
	s, _ := newTestSMTP(t, map[string]string{sdomain.KeySMTPHost: ""}, nil)
	s.cfg.SMTPHost = ""
	err := s.Send(context.Background(), uuid.New(), edomain.Message{To: "a@b.com"})
	assert.ErrorIs(t, err, edomain.ErrNotConfigured)
}

func TestBuildMIME_Multipart(t *testing.T) {
	raw, err := buildMIME("from@x.test", edomain.Message{
		To: "to@x.test", Subject: "Valoración", Text: "plain body", HTML: "<b>html body</b>",
	})
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, "multipart/alternative; boundary=")
	assert.Contains(t, body, "Subject: =?utf-8?q?")
	assert.Less(t, strings.Index(body, "plain body"), strings.Index(body, "<b>html body</b>"))
}
