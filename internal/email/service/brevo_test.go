package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/config"
	edomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/email/domain"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

func newTestBrevo(t *testing.T, vals map[string]string) *Brevo {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.BrevoAPIKey = ""
	b := NewBrevo(mockSettings{vals: vals}, cfg)
	httpmock.ActivateNonDefault(b.http)
	t.Cleanup(httpmock.DeactivateAndReset)
	return b
}

func TestBrevo_SendsHTMLAndText(t *testing.T) {
	b := newTestBrevo(t, map[string]string{
		sdomain.KeyBrevoAPIKey: "key-123",
		sdomain.KeyBrevoSender: "hello@salon.test",
	})

	var got brevoEmail
	var gotKey string
	httpmock.RegisterResponder(http.MethodPost, brevoEndpoint, func(req *http.Request) (*http.Response, error) {
		gotKey = req.Header.Get("api-key")
		if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
			return httpmock.NewStringResponse(http.StatusBadRequest, ""), nil
		}
		return httpmock.NewStringResponse(http.StatusCreated, `{"messageId":"<1@brevo>"}`), nil
	})

	err := b.Send(context.Background(), uuid.New(), edomain.Message{
		To: "ana@example.com", Subject: "Tomorrow", Text: "plain", HTML: "<p>rich</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.Equal(t, "key-123", gotKey)
	assert.Equal(t, "hello@salon.test", got.Sender.Email)
	require.Len(t, got.To, 1)
	assert.Equal(t, "ana@example.com", got.To[0].Email)
	assert.Equal(t, "plain", got.TextContent)
	assert.Equal(t, "<p>rich</p>", got.HTMLContent)
}

func TestBrevo_ErrorStatus(t *testing.T) {
	b := newTestBrevo(t, map[string]string{
		sdomain.KeyBrevoAPIKey: "key-123",
		sdomain.KeyBrevoSender: "hello@salon.test",
	})
	httpmock.RegisterResponder(http.MethodPost, brevoEndpoint,
		httpmock.NewStringResponder(http.StatusBadRequest, `{"code":"invalid_parameter"}`))

	err := b.Send(context.Background(), uuid.New(), edomain.Message{To: "bad", Subject: "x", Text: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_parameter")
}

func TestBrevo_NotConfigured(t *testing.T) {
	b := newTestBrevo(t, map[string]string{})
	err := b.Send(context.Background(), uuid.New(), edomain.Message{To: "a@b.com"})
	assert.ErrorIs(t, err, edomain.ErrNotConfigured)
	assert.Zero(t, httpmock.GetTotalCallCount())
}
