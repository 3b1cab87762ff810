package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "auth_uid"
	CtxUserEmail = "auth_email"
)

// UserID extracts the authenticated user's id from the Gin context.
// This is set by middleware.RequireUser.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// UserEmail extracts the authenticated user's email, when the token carried one.
func UserEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserEmail))
}
