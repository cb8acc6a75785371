package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openmusicarchive/catalogue/internal/metrics"
	"github.com/openmusicarchive/catalogue/pkg/logger"
)

// MetricsMiddleware records HTTP metrics for each request. The gin route
// template is used as the path label so IDs do not blow up cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.IncInFlight()
		defer metrics.DecInFlight()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}

// LoggingMiddleware logs each request with method, route, status, duration
// and client IP.
func LoggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"client", c.ClientIP(),
		)
	}
}
