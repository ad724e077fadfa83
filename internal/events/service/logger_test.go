package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/events/domain"
)

func TestLogger_PublishWritesContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	booking := uuid.New()
	err := NewLogger().Publish(ctx, domain.Event{
		Type:      domain.TypeFeedbackSent,
		TenantID:  uuid.New(),
		BookingID: booking,
		Meta:      map[string]string{"provider": "smtp"},
		Time:      time.Now(),
	})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, domain.TypeFeedbackSent, line["type"])
	assert.Equal(t, booking.String(), line["booking_id"])
}
