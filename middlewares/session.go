package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/session"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/gin-gonic/gin"
)

const SessionHeader = "X-Session-ID"

// SessionMiddleware attaches the visitor session. The id comes from the
// cookie, or from X-Session-ID for clients without cookies, and is echoed
// back in both places.
func SessionMiddleware(store session.Store, cookieName string, ttl time.Duration, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			id = c.GetHeader(SessionHeader)
		}

		sess, err := session.Open(c.Request.Context(), store, id, ttl)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "open session", "error", err, "request_id", utils.RequestID(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "session unavailable"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, sess.ID, int(ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
		c.Header(SessionHeader, sess.ID)
		c.Set(utils.KeySession, sess)
		c.Next()
	}
}
