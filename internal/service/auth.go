package service

import (
	"context"
	"errors"

	"wheel_backend/internal/domain"
	"wheel_backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService checks credentials against the users document.
type AuthService struct {
	store store.Store
}

func NewAuthService(st store.Store) *AuthService {
	return &AuthService{store: st}
}

// Login verifies the password and returns the matching user plus a
// signed token. The returned user is sanitized.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, "", err
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, "", ErrInvalidCredentials
		}
		role := u.Role
		if role == "" {
			role = domain.RoleUser
		}
		token, err := GenerateJWT(u.Username, role)
		if err != nil {
			return nil, "", err
		}
		safe := u.Sanitized()
		return &safe, token, nil
	}

	// Burn a comparison anyway so a missing user costs the same as a
	// wrong password.
	bcrypt.CompareHashAndPassword(
		[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"), []byte(password))
	return nil, "", ErrInvalidCredentials
}

// ChangePassword rehashes and stores a new password for the user.
func (s *AuthService) ChangePassword(ctx context.Context, username, newPassword string) error {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].Username != username {
			continue
		}
		hash, err := HashPassword(newPassword)
		if err != nil {
			return err
		}
		users[i].PasswordHash = hash
		return s.store.SaveUsers(ctx, users)
	}
	return domain.ErrUserNotFound
}

// HashPassword bcrypt-hashes a plaintext password at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
