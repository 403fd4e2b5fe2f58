package utils

import (
	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/session"

	"github.com/gin-gonic/gin"
)

// gin context keys
const (
	KeyUserID    = "userId"
	KeyRole      = "role"
	KeySession   = "session"
	KeyRequestID = "requestId"
)

// CurrentUserID is 0 for anonymous visitors.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(KeyUserID)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get(KeyRole); ok {
		if r, ok := v.(entity.Role); ok {
			return r
		}
	}
	return ""
}

// CurrentSession returns the visitor session set by SessionMiddleware.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(KeySession); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}

func RequestID(c *gin.Context) string {
	return c.GetString(KeyRequestID)
}
