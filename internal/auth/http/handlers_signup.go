package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projtrackr/projtrackr-backend/internal/auth/domain"
)

// Signup creates a new account via the identity provider.
// The email is auto-confirmed; the client signs in afterwards on its own.
func (h *Handler) Signup(c *gin.Context) {
	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.signupService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrEmailExists.Error()})
			return
		}
		var provErr *domain.ProviderError
		if errors.As(err, &provErr) {
			log.Printf("signup rejected by provider: %s", provErr.Message)
			c.JSON(http.StatusBadRequest, gin.H{"error": provErr.Message})
			return
		}
		log.Printf("signup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
