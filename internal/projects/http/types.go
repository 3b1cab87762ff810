package http

import "github.com/projtrackr/projtrackr-backend/internal/projects/service"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	service *service.ProjectService
}

func New(service *service.ProjectService) *Handler {
	return &Handler{service: service}
}
