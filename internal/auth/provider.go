package auth

import (
	"context"

	"github.com/projtrackr/projtrackr-backend/internal/auth/domain"
)

// Provider is the external identity provider the service delegates to.
// A single configured implementation is constructed in main and injected
// into the router; handlers never reach for a package-level client.
type Provider interface {
	// VerifyToken checks a bearer ID token and returns the caller's identity.
	// Returns domain.ErrInvalidToken when the token cannot be verified.
	VerifyToken(ctx context.Context, idToken string) (*domain.TokenInfo, error)

	// GetUser fetches the provider's user record for a verified uid.
	GetUser(ctx context.Context, uid string) (*domain.User, error)

	// CreateUser registers a new account with the email pre-confirmed.
	// Returns domain.ErrEmailExists when the address is already registered.
	CreateUser(ctx context.Context, nu domain.NewUser) (*domain.User, error)
}
