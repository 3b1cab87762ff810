package service

import (
	"context"
	"strings"

	"github.com/projtrackr/projtrackr-backend/internal/auth"
	"github.com/projtrackr/projtrackr-backend/internal/auth/domain"
)

type SignupService struct {
	provider auth.Provider
}

func NewSignupService(provider auth.Provider) *SignupService {
	return &SignupService{provider: provider}
}

// Signup creates an account with the identity provider. The email is
// auto-confirmed because no mail server is configured. Missing name fields
// default from the email local part, matching what the client sends.
func (s *SignupService) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.PublicUser, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = emailLocalPart(req.Email)
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		fullName = name
	}

	created, err := s.provider.CreateUser(ctx, domain.NewUser{
		Email:    req.Email,
		Password: req.Password,
		Name:     name,
		FullName: fullName,
	})
	if err != nil {
		return nil, err
	}

	email := created.Email
	if email == "" {
		email = req.Email
	}

	return &domain.PublicUser{
		ID:       created.ID,
		Email:    email,
		Name:     name,
		FullName: fullName,
	}, nil
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
