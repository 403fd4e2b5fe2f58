package middlewares

import (
	"net/http"
	"slices"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware reads the JWT from ?token= first, since browsers cannot
// set headers on a websocket handshake, then from the Authorization header.
func WSAuthMiddleware(secret string, requiredRoles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr = bearerToken(c)
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}
		if len(requiredRoles) > 0 && !slices.Contains(requiredRoles, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}
