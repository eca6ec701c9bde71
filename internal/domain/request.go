package domain

import "errors"

var ErrRequestNotFound = errors.New("signup request not found")

// SignupRequest is a self-service registration request waiting for an
// admin to turn it into an account. Created stays false until approval;
// Username is filled in at that point.
type SignupRequest struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Created     bool   `json:"created"`
	RequestedAt string `json:"requested_at"` // RFC 3339
	Username    string `json:"username,omitempty"`
	GDPRConsent bool   `json:"gdpr_consent,omitempty"`
	GDPRDate    string `json:"gdpr_consent_date,omitempty"`
}
