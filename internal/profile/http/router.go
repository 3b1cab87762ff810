package http

import "github.com/gin-gonic/gin"

// Register attaches profile routes to the given router group.
// The group must already require authentication.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.update)
}
