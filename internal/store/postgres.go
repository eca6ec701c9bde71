package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wheel_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each document as a jsonb row in a single
// documents table, with the same whole-document read/replace semantics
// as the file backend. Schema is applied by cmd/migrate_apply.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) load(ctx context.Context, name string, v any) (bool, error) {
	var body []byte
	err := s.db.QueryRow(ctx,
		`SELECT body FROM documents WHERE name = $1`, name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, fmt.Errorf("decode %s document: %w", name, err)
	}
	return true, nil
}

func (s *PostgresStore) save(ctx context.Context, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", name, err)
	}
	_, err = s.db.Exec(ctx,
		`INSERT INTO documents (name, body, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET body = $2, updated_at = now()`,
		name, body)
	return err
}

func (s *PostgresStore) LoadConfig(ctx context.Context) (*domain.WheelConfig, error) {
	var cfg domain.WheelConfig
	found, err := s.load(ctx, DocConfig, &cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrConfigNotFound
	}
	return &cfg, nil
}

func (s *PostgresStore) SaveConfig(ctx context.Context, cfg *domain.WheelConfig) error {
	return s.save(ctx, DocConfig, cfg)
}

func (s *PostgresStore) LoadPlays(ctx context.Context) ([]domain.PlayLogEntry, error) {
	plays := []domain.PlayLogEntry{}
	if _, err := s.load(ctx, DocPlays, &plays); err != nil {
		return nil, err
	}
	return plays, nil
}

func (s *PostgresStore) SavePlays(ctx context.Context, plays []domain.PlayLogEntry) error {
	return s.save(ctx, DocPlays, plays)
}

func (s *PostgresStore) LoadUsers(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if _, err := s.load(ctx, DocUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *PostgresStore) SaveUsers(ctx context.Context, users []domain.User) error {
	return s.save(ctx, DocUsers, users)
}

func (s *PostgresStore) LoadRequests(ctx context.Context) ([]domain.SignupRequest, error) {
	reqs := []domain.SignupRequest{}
	if _, err := s.load(ctx, DocRequests, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *PostgresStore) SaveRequests(ctx context.Context, reqs []domain.SignupRequest) error {
	return s.save(ctx, DocRequests, reqs)
}
