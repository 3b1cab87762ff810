package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)

// ProviderError is a rejection from the identity provider (weak password,
// malformed email, ...). Surfaced to the caller as a 400 with the provider's
// message, matching how the service has always behaved.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// User is the identity provider's view of an account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenInfo is what a verified bearer token tells us about the caller.
type TokenInfo struct {
	UID   string
	Email string
}

// NewUser carries the fields needed to create an account.
// Email is auto-confirmed since no mail server is configured.
type NewUser struct {
	Email    string
	Password string
	Name     string
	FullName string
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// PublicUser is the subset of User returned by the signup endpoint.
type PublicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}
