// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/metrics"
)

// Metrics records request counts, latency and in-flight gauges per route.
// Labels use the route template (e.g. /api/articles/:slug), not the raw URL,
// so slugs and ids don't explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// The scrape endpoint itself is not worth measuring.
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
