package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"hexforge/cryptohub/internal/metrics"
)

// Metrics records request counts and latency per route template, so
// /data/:key stays one label value regardless of key.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
