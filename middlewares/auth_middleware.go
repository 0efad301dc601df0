package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/utils"
)

// AuthMiddleware gates a route group behind a bearer JWT. With no roles
// given it admits plain users; pass roles to restrict further.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	if len(roles) == 0 {
		roles = []string{"user"}
	}
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Set("userID", claims.ID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// UserID reads the id the middleware stashed on the context.
func UserID(c *gin.Context) uint {
	id, _ := c.Get("userID")
	uid, _ := id.(uint)
	return uid
}
