package http

import "github.com/projtrackr/projtrackr-backend/internal/auth/service"

type Handler struct {
	signupService *service.SignupService
}

func New(signupService *service.SignupService) *Handler {
	return &Handler{
		signupService: signupService,
	}
}
