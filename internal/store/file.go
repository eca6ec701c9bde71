package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"wheel_backend/internal/domain"
)

// FileStore keeps each document as one pretty-printed JSON file under a
// data directory, replaced atomically via a temp file and rename.
// Collection documents read as empty when their file does not exist
// yet; a missing config is an error.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) read(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s document: %w", name, err)
	}
	return nil
}

func (s *FileStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s document: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(name))
}

func (s *FileStore) LoadConfig(ctx context.Context) (*domain.WheelConfig, error) {
	var cfg domain.WheelConfig
	if err := s.read(DocConfig, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (s *FileStore) SaveConfig(ctx context.Context, cfg *domain.WheelConfig) error {
	return s.write(DocConfig, cfg)
}

func (s *FileStore) LoadPlays(ctx context.Context) ([]domain.PlayLogEntry, error) {
	var plays []domain.PlayLogEntry
	if err := s.read(DocPlays, &plays); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.PlayLogEntry{}, nil
		}
		return nil, err
	}
	return plays, nil
}

func (s *FileStore) SavePlays(ctx context.Context, plays []domain.PlayLogEntry) error {
	return s.write(DocPlays, plays)
}

func (s *FileStore) LoadUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.read(DocUsers, &users); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.User{}, nil
		}
		return nil, err
	}
	return users, nil
}

func (s *FileStore) SaveUsers(ctx context.Context, users []domain.User) error {
	return s.write(DocUsers, users)
}

func (s *FileStore) LoadRequests(ctx context.Context) ([]domain.SignupRequest, error) {
	var reqs []domain.SignupRequest
	if err := s.read(DocRequests, &reqs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.SignupRequest{}, nil
		}
		return nil, err
	}
	return reqs, nil
}

func (s *FileStore) SaveRequests(ctx context.Context, reqs []domain.SignupRequest) error {
	return s.write(DocRequests, reqs)
}
