package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/spf13/cobra"

	bkdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/bookings/domain"
	db "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/db/sqlc"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/service"
)

type seedOptions struct {
	businesses int
	bookings   int
	seed       int64
}

func newSeedCmd() *cobra.Command {
	var opts seedOptions
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert fake businesses and bookings due for reminders and feedback (development only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.AppEnv == "production" {
				return fmt.Errorf("refusing to seed with APP_ENV=production")
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			pool, err := openPool(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := seed(cmd.Context(), db.New(pool), opts, time.Now().In(loc))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d businesses and %d bookings\n", opts.businesses, n)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.businesses, "businesses", 3, "number of businesses")
	cmd.Flags().IntVar(&opts.bookings, "bookings", 5, "bookings per business and job")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "gofakeit seed (0 = random)")
	return cmd
}

// seed creates businesses (every third one opted out of reminders) with bookings for
// tomorrow and completed bookings inside the feedback window. It returns the booking count.
func seed(ctx context.Context, q *db.Queries, opts seedOptions, now time.Time) (int, error) {
	faker := gofakeit.New(opts.seed)
	tomorrow := service.ReminderDate(now, now.Location())
	// midnight two days ago is inside [now-48h, now-24h) unless now is exactly midnight
	y, m, d := now.Date()
	feedbackDay := time.Date(y, m, d-2, 0, 0, 0, 0, time.UTC)
	count := 0

	for i := 0; i < opts.businesses; i++ {
		bizID := uuid.New()
		settings := []byte(`{"reminders_enabled": true}`)
		if i%3 == 2 {
			settings = []byte(`{"reminders_enabled": false}`)
		}
		if err := q.CreateBusiness(ctx, db.CreateBusinessParams{
			ID:              pgUUID(bizID),
			Name:            faker.Company(),
			Email:           pgText(faker.Email()),
			Phone:           pgText(faker.Phone()),
			Address:         pgText(faker.Street() + ", " + faker.City()),
			BookingSettings: settings,
		}); err != nil {
			return count, fmt.Errorf("create business: %w", err)
		}
		svcID := uuid.New()
		if err := q.CreateService(ctx, db.CreateServiceParams{
			ID:              pgUUID(svcID),
			BusinessID:      pgUUID(bizID),
			Name:            faker.JobTitle(),
			DurationMinutes: int32(faker.RandomInt([]int{30, 45, 60, 90})),
		}); err != nil {
			return count, fmt.Errorf("create service: %w", err)
		}

		for j := 0; j < opts.bookings; j++ {
			for _, b := range []struct {
				date   time.Time
				status bkdomain.Status
			}{
				{tomorrow, bkdomain.ReminderStatuses[j%len(bkdomain.ReminderStatuses)]},
				{feedbackDay, bkdomain.StatusCompleted},
			} {
				y, m, d := b.date.Date()
				if err := q.CreateBooking(ctx, db.CreateBookingParams{
					ID:            pgUUID(uuid.New()),
					BusinessID:    pgUUID(bizID),
					ServiceID:     pgUUID(svcID),
					BookingDate:   pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true},
					BookingTime:   pgtype.Time{Microseconds: int64(9+j%9) * int64(time.Hour/time.Microsecond), Valid: true},
					CustomerName:  faker.Name(),
					CustomerEmail: pgText(faker.Email()),
					CustomerPhone: pgText(faker.Phone()),
					Notes:         pgText(faker.Sentence(6)),
					Status:        string(b.status),
				}); err != nil {
					return count, fmt.Errorf("create booking: %w", err)
				}
				count++
			}
		}
	}
	return count, nil
}

func pgUUID(u uuid.UUID) pgtype.UUID { return pgtype.UUID{Bytes: u, Valid: true} }

func pgText(s string) pgtype.Text { return pgtype.Text{String: s, Valid: s != ""} }
