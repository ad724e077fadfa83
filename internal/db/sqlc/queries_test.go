package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*pgxpool.Pool, *Queries) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("skipping integration test: DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), os.Getenv("DATABASE_URL"))
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool, New(pool)
}

func toPgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func toPgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func createCompletedBooking(t *testing.T, q *Queries) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	bizID, svcID, id := uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, q.CreateBusiness(ctx, CreateBusinessParams{ID: toPgUUID(bizID), Name: gofakeit.Company()}))
	require.NoError(t, q.CreateService(ctx, CreateServiceParams{ID: toPgUUID(svcID), BusinessID: toPgUUID(bizID), Name: "Massage", DurationMinutes: 60}))
	require.NoError(t, q.CreateBooking(ctx, CreateBookingParams{
		ID:            toPgUUID(id),
		BusinessID:    toPgUUID(bizID),
		ServiceID:     toPgUUID(svcID),
		BookingDate:   pgtype.Date{Time: time.Date(2093, 1, 2, 0, 0, 0, 0, time.UTC), Valid: true},
		BookingTime:   pgtype.Time{Microseconds: int64(9 * time.Hour / time.Microsecond), Valid: true},
		CustomerName:  gofakeit.Name(),
		CustomerEmail: toPgText(gofakeit.Email()),
		Status:        "completed",
	}))
	return id
}

func TestSetFeedbackToken_SetOnce(t *testing.T) {
	_, q := setupTestDB(t)
	ctx := context.Background()
	id := createCompletedBooking(t, q)

	first := "tok-" + uuid.NewString()
	got, err := q.SetFeedbackToken(ctx, SetFeedbackTokenParams{Token: toPgText(first), ID: toPgUUID(id)})
	require.NoError(t, err)
	assert.Equal(t, first, got.String)

	got, err = q.SetFeedbackToken(ctx, SetFeedbackTokenParams{Token: toPgText("tok-" + uuid.NewString()), ID: toPgUUID(id)})
	require.NoError(t, err)
	assert.Equal(t, first, got.String)
}

func TestMarkFeedbackSent_OnlyFirstCallCounts(t *testing.T) {
	_, q := setupTestDB(t)
	ctx := context.Background()
	id := createCompletedBooking(t, q)

	at := time.Now().UTC().Truncate(time.Microsecond)
	n, err := q.MarkFeedbackSent(ctx, MarkFeedbackSentParams{SentAt: pgtype.Timestamptz{Time: at, Valid: true}, ID: toPgUUID(id)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = q.MarkFeedbackSent(ctx, MarkFeedbackSentParams{SentAt: pgtype.Timestamptz{Time: at.Add(time.Hour), Valid: true}, ID: toPgUUID(id)})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	b, err := q.GetBookingByID(ctx, toPgUUID(id))
	require.NoError(t, err)
	assert.True(t, b.FeedbackSent)
	assert.True(t, at.Equal(b.FeedbackSentAt.Time))
}

func TestAppSettings_TenantOverride(t *testing.T) {
	_, q := setupTestDB(t)
	ctx := context.Background()
	tenant := uuid.New()
	require.NoError(t, q.CreateBusiness(ctx, CreateBusinessParams{ID: toPgUUID(tenant), Name: gofakeit.Company()}))
	key := "test." + uuid.NewString()

	require.NoError(t, q.UpsertAppSetting(ctx, UpsertAppSettingParams{ID: toPgUUID(uuid.New()), Key: key, Value: "global"}))
	require.NoError(t, q.UpsertAppSetting(ctx, UpsertAppSettingParams{ID: toPgUUID(uuid.New()), TenantID: toPgUUID(tenant), Key: key, Value: "v1"}))
	require.NoError(t, q.UpsertAppSetting(ctx, UpsertAppSettingParams{ID: toPgUUID(uuid.New()), TenantID: toPgUUID(tenant), Key: key, Value: "v2"}))

	row, err := q.GetAppSettingByKeyTenant(ctx, GetAppSettingByKeyTenantParams{Key: key, TenantID: toPgUUID(tenant)})
	require.NoError(t, err)
	assert.Equal(t, "v2", row.Value)

	global, err := q.GetAppSettingGlobal(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "global", global.Value)
}
