package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

var _ sdomain.Service = (*Service)(nil)

type Service struct{ repo sdomain.Repository }

func New(repo sdomain.Repository) *Service { return &Service{repo: repo} }

// lookup returns the trimmed stored value, or ok=false when it is missing or blank.
func (s *Service) lookup(ctx context.Context, key string, tenantID *uuid.UUID) (string, bool, error) {
	v, ok, err := s.repo.Get(ctx, key, tenantID)
	if err != nil || !ok {
		return "", false, err
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *Service) GetString(ctx context.Context, key string, tenantID *uuid.UUID, def string) (string, error) {
	v, ok, err := s.lookup(ctx, key, tenantID)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

func (s *Service) GetDuration(ctx context.Context, key string, tenantID *uuid.UUID, def time.Duration) (time.Duration, error) {
	v, ok, err := s.lookup(ctx, key, tenantID)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, nil
	}
	return d, nil
}

func (s *Service) GetInt(ctx context.Context, key string, tenantID *uuid.UUID, def int) (int, error) {
	v, ok, err := s.lookup(ctx, key, tenantID)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, nil
	}
	return n, nil
}

// Set stores a value, global when tenantID is nil. Credentials are flagged secret.
func (s *Service) Set(ctx context.Context, key string, tenantID *uuid.UUID, value string) error {
	return s.repo.Upsert(ctx, strings.TrimSpace(key), tenantID, value, sdomain.IsSecret(key))
}
