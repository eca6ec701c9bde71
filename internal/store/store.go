package store

import (
	"context"
	"errors"

	"wheel_backend/internal/domain"
)

// ErrConfigNotFound means no wheel configuration document exists yet.
// The engine refuses to invent a default; an admin has to save one.
var ErrConfigNotFound = errors.New("wheel config document not found")

// Document names shared by all backends.
const (
	DocConfig   = "config"
	DocPlays    = "plays"
	DocUsers    = "users"
	DocRequests = "requests"
)

// Store persists the four JSON documents the system runs on. The
// contract is deliberately dumb: read the whole document, replace the
// whole document. There are no partial updates and no transactions;
// callers that append must serialize their own read-modify-write.
type Store interface {
	LoadConfig(ctx context.Context) (*domain.WheelConfig, error)
	SaveConfig(ctx context.Context, cfg *domain.WheelConfig) error

	LoadPlays(ctx context.Context) ([]domain.PlayLogEntry, error)
	SavePlays(ctx context.Context, plays []domain.PlayLogEntry) error

	LoadUsers(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error

	LoadRequests(ctx context.Context) ([]domain.SignupRequest, error)
	SaveRequests(ctx context.Context, reqs []domain.SignupRequest) error
}
