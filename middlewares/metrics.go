package middlewares

import (
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route pattern.
func Metrics(m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		m.ObserveRequest(handler, c.Writer.Status(), time.Since(start))
	}
}
