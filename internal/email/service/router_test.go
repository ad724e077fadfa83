package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/config"
	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

type mockSettings struct{ vals map[string]string }

func (m mockSettings) GetString(ctx context.Context, key string, tenantID *uuid.UUID, def string) (string, error) {
	if v, ok := m.vals[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m mockSettings) GetDuration(ctx context.Context, key string, tenantID *uuid.UUID, def time.Duration) (time.Duration, error) {
	if v, ok := m.vals[key]; ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d, nil
		}
	}
	return def, nil
}

func (m mockSettings) GetInt(ctx context.Context, key string, tenantID *uuid.UUID, def int) (int, error) {
	if v, ok := m.vals[key]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n, nil
		}
	}
	return def, nil
}

var _ sdomain.Service = (*mockSettings)(nil)

type captureSender struct {
	calls      int
	last       edomain.Message
	lastTenant uuid.UUID
	err        error
}

func (c *captureSender) Send(ctx context.Context, tenantID uuid.UUID, msg edomain.Message) error {
	c.calls++
	c.last = msg
	c.lastTenant = tenantID
	return c.err
}

func newTestRouter(t *testing.T, provider string) (*Router, *captureSender, *captureSender) {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	ms := mockSettings{vals: map[string]string{sdomain.KeyEmailProvider: provider}}
	r := NewRouter(ms, cfg)
	smtpCap, brevoCap := &captureSender{}, &captureSender{}
	r.smtp = smtpCap
	r.brevo = brevoCap
	return r, smtpCap, brevoCap
}

func TestRouter_SelectsSMTP(t *testing.T) {
	r, smtpCap, brevoCap := newTestRouter(t, "smtp")
	tenant := uuid.New()

	err := r.Send(context.Background(), tenant, edomain.Message{To: "a@b.com", Subject: "sub", Text: "body"})
	require.NoError(t, err)
	assert.Equal(t, 1, smtpCap.calls)
	assert.Zero(t, brevoCap.calls)
	assert.Equal(t, tenant, smtpCap.lastTenant)
	assert.Equal(t, "a@b.com", smtpCap.last.To)
}

func TestRouter_SelectsBrevo(t *testing.T) {
	r, smtpCap, brevoCap := newTestRouter(t, "Brevo")

	err := r.Send(context.Background(), uuid.New(), edomain.Message{To: "a@b.com", Subject: "sub", HTML: "<p>hi</p>"})
	require.NoError(t, err)
	assert.Equal(t, 1, brevoCap.calls)
	assert.Zero(t, smtpCap.calls)
	assert.Equal(t, ProviderBrevo, r.Provider(context.Background(), uuid.Nil))
}

func TestRouter_UnknownProviderFallsBackToSMTP(t *testing.T) {
	r, smtpCap, _ := newTestRouter(t, "carrier-pigeon")
	require.NoError(t, r.Send(context.Background(), uuid.New(), edomain.Message{To: "a@b.com"}))
	assert.Equal(t, 1, smtpCap.calls)
}

func TestRouter_PropagatesError(t *testing.T) {
	r, smtpCap, _ := newTestRouter(t, "smtp")
	smtpCap.err = errors.New("connection refused")
	err := r.Send(context.Background(), uuid.New(), edomain.Message{To: "a@b.com"})
	assert.EqualError(t, err, "connection refused")
}
