package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/projtrackr/projtrackr-backend/internal/auth"
	"github.com/projtrackr/projtrackr-backend/internal/auth/domain"
)

// stubProvider verifies exactly one token and records whether anything
// past the middleware was reached.
type stubProvider struct {
	validToken string
	uid        string
	email      string
}

func (s *stubProvider) VerifyToken(_ context.Context, idToken string) (*domain.TokenInfo, error) {
	if idToken == s.validToken {
		return &domain.TokenInfo{UID: s.uid, Email: s.email}, nil
	}
	return nil, domain.ErrInvalidToken
}

func (s *stubProvider) GetUser(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubProvider) CreateUser(context.Context, domain.NewUser) (*domain.User, error) {
	return nil, domain.ErrEmailExists
}

func authedRouter(provider auth.Provider, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/projects", RequireUser(provider), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"uid": auth.UserID(c)})
	})
	return r
}

func TestRequireUserMissingToken(t *testing.T) {
	reached := false
	r := authedRouter(&stubProvider{validToken: "good", uid: "u1"}, &reached)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Authorization required")
	assert.False(t, reached, "handler must not run without a token")
}

func TestRequireUserInvalidToken(t *testing.T) {
	reached := false
	r := authedRouter(&stubProvider{validToken: "good", uid: "u1"}, &reached)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Unauthorized")
	assert.False(t, reached, "handler must not run with a bad token")
}

func TestRequireUserMalformedHeader(t *testing.T) {
	reached := false
	r := authedRouter(&stubProvider{validToken: "good", uid: "u1"}, &reached)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "good")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, reached)
}

func TestRequireUserValidToken(t *testing.T) {
	reached := false
	r := authedRouter(&stubProvider{validToken: "good", uid: "u1", email: "a@b.com"}, &reached)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, reached)
	assert.Contains(t, rr.Body.String(), `"uid":"u1"`)
}
