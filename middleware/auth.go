package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"spicemart-backend/auth"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserID   = "userId"
	CtxEmail    = "email"
	CtxUsername = "username"
)

// RequireAuth verifies the bearer token on protected routes. A missing
// token and an invalid token are distinct responses so clients can tell
// "log in first" from "session expired".
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		claims, err := issuer.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}
