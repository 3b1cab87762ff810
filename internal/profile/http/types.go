package http

import (
	"github.com/projtrackr/projtrackr-backend/internal/auth"
	"github.com/projtrackr/projtrackr-backend/internal/profile/repository"
)

// Handler serves the profile fallback endpoints. It needs both the store
// and the identity provider: when no fallback copy exists, the profile is
// assembled from the provider's user metadata.
type Handler struct {
	repo     *repository.Repo
	provider auth.Provider
}

func New(repo *repository.Repo, provider auth.Provider) *Handler {
	return &Handler{repo: repo, provider: provider}
}
