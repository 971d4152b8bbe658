package middleware

import (
	"net/http"
	"strings"

	"servehub/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the identity middleware.
const (
	CtxCallerID   = "callerID"
	CtxCallerRole = "callerRole"
)

// JWTAuthMiddleware resolves the caller's identity from a bearer token issued
// by the identity service. The booking core trusts the token; it does not
// re-authenticate.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxCallerID, subject)
		c.Set(CtxCallerRole, role)
		c.Next()
	}
}

// CallerID returns the authenticated caller's ID from the request context.
func CallerID(c *gin.Context) string {
	return c.GetString(CtxCallerID)
}
