package middleware

import (
	"net/http"
	"strings"

	"cleanmaster/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards the admin endpoints. The token comes from
// the static-credential login and must carry the admin role.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil || role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}

// DeviceMiddleware extracts the caller's device id. The orders page and the
// phone memory need it; everything else works without one.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if deviceID := c.GetHeader("X-Device-ID"); deviceID != "" {
			c.Set("deviceID", deviceID)
		}
		c.Next()
	}
}
