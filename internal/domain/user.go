package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is one entry of the users document. PasswordHash is a bcrypt
// hash and must never leave the server.
type User struct {
	Username     string       `json:"user"`
	Role         string       `json:"role,omitempty"`
	PasswordHash string       `json:"password_hash,omitempty"`
	Email        string       `json:"email,omitempty"`
	FirstName    string       `json:"first_name,omitempty"`
	LastName     string       `json:"last_name,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	City         string       `json:"city,omitempty"`
	GDPRConsent  bool         `json:"gdpr_consent,omitempty"`
	GDPRDate     string       `json:"gdpr_consent_date,omitempty"`
	History      []PlayRecord `json:"history"`
}

// IsAdmin reports whether the user may use the dashboard endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Sanitized returns a copy safe to hand to clients.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
