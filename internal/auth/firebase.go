package auth

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/projtrackr/projtrackr-backend/config"
	"github.com/projtrackr/projtrackr-backend/internal/auth/domain"
)

// InitializeFirebase initializes the Firebase Admin SDK and returns an Auth client
func InitializeFirebase(cfg *config.FirebaseConfig) (*fbauth.Client, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	return authClient, nil
}

// FirebaseProvider adapts the Firebase Auth client to the Provider interface.
type FirebaseProvider struct {
	client *fbauth.Client
}

var _ Provider = (*FirebaseProvider)(nil)

func NewFirebaseProvider(client *fbauth.Client) *FirebaseProvider {
	return &FirebaseProvider{client: client}
}

func (p *FirebaseProvider) VerifyToken(ctx context.Context, idToken string) (*domain.TokenInfo, error) {
	decoded, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	info := &domain.TokenInfo{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		info.Email = email
	}

	return info, nil
}

func (p *FirebaseProvider) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	rec, err := p.client.GetUser(ctx, uid)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", uid, err)
	}

	return userFromRecord(rec), nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	params := (&fbauth.UserToCreate{}).
		Email(nu.Email).
		Password(nu.Password).
		DisplayName(nu.FullName).
		EmailVerified(true)

	rec, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, &domain.ProviderError{Message: err.Error()}
	}

	u := userFromRecord(rec)
	u.Name = nu.Name
	return u, nil
}

func userFromRecord(rec *fbauth.UserRecord) *domain.User {
	u := &domain.User{
		ID:       rec.UID,
		Email:    rec.Email,
		FullName: rec.DisplayName,
		Name:     rec.DisplayName,
	}
	if rec.PhotoURL != "" {
		u.AvatarURL = rec.PhotoURL
	}
	if rec.UserMetadata != nil && rec.UserMetadata.CreationTimestamp > 0 {
		u.CreatedAt = time.UnixMilli(rec.UserMetadata.CreationTimestamp).UTC()
	}
	return u
}
