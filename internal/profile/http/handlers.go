package http

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projtrackr/projtrackr-backend/internal/auth"
	"github.com/projtrackr/projtrackr-backend/internal/profile/domain"
)

func (h *Handler) get(c *gin.Context) {
	userID := auth.UserID(c)

	p, err := h.repo.Get(c.Request.Context(), userID)
	if err != nil {
		log.Printf("get profile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	if p == nil {
		// No stored copy yet; assemble one from the provider's metadata.
		p, err = h.providerProfile(c.Request.Context(), userID)
		if err != nil {
			log.Printf("get profile error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) update(c *gin.Context) {
	userID := auth.UserID(c)

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	p, err := h.repo.Get(c.Request.Context(), userID)
	if err != nil {
		log.Printf("update profile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	if p == nil {
		p, err = h.providerProfile(c.Request.Context(), userID)
		if err != nil {
			log.Printf("update profile error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		p.AvatarURL = *req.AvatarURL
	}
	p.ID = userID

	if err := h.repo.Save(c.Request.Context(), p); err != nil {
		log.Printf("update profile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) providerProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	u, err := h.provider.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fullName := u.FullName
	if fullName == "" {
		fullName = emailLocalPart(u.Email)
	}

	return &domain.Profile{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  fullName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}, nil
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
