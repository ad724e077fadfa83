package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	db "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/db/sqlc"
	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

var _ sdomain.Repository = (*SQLCRepository)(nil)

type SQLCRepository struct{ q *db.Queries }

func New(pg *pgxpool.Pool) *SQLCRepository { return &SQLCRepository{q: db.New(pg)} }

func toPgUUIDPtr(u *uuid.UUID) pgtype.UUID {
	if u == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *u, Valid: true}
}

func (r *SQLCRepository) Get(ctx context.Context, key string, tenantID *uuid.UUID) (string, bool, error) {
	if tenantID != nil && *tenantID != uuid.Nil {
		row, err := r.q.GetAppSettingByKeyTenant(ctx, db.GetAppSettingByKeyTenantParams{Key: key, TenantID: toPgUUIDPtr(tenantID)})
		if err == nil {
			return row.Value, true, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return "", false, err
		}
	}
	row, err := r.q.GetAppSettingGlobal(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

func (r *SQLCRepository) Upsert(ctx context.Context, key string, tenantID *uuid.UUID, value string, secret bool) error {
	return r.q.UpsertAppSetting(ctx, db.UpsertAppSettingParams{
		ID:       pgtype.UUID{Bytes: uuid.New(), Valid: true},
		TenantID: toPgUUIDPtr(tenantID),
		Key:      key,
		Value:    value,
		IsSecret: secret,
	})
}
