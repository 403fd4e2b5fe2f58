package middlewares

import (
	"net/http"
	"slices"
	"strings"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func setClaims(c *gin.Context, claims *utils.Claims) {
	c.Set(utils.KeyUserID, claims.UserID)
	c.Set(utils.KeyRole, claims.Role)
}

// AuthMiddleware verifies the bearer token and, when roles are given,
// requires one of them.
func AuthMiddleware(secret string, requiredRoles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			return
		}
		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}
		setClaims(c, claims)

		if len(requiredRoles) > 0 && !slices.Contains(requiredRoles, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}
		c.Next()
	}
}

// OptionalAuth identifies the user when a valid token is present and lets
// anonymous visitors through otherwise. The cart routes use it so guests
// can shop and only checkout asks for a login.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := bearerToken(c); tokenStr != "" {
			if claims, err := utils.ParseToken(tokenStr, secret); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}
