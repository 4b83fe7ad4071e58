package middleware

import (
	"strconv"
	"time"

	"agendamento-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute keeps label cardinality bounded for 404 traffic.
const unmatchedRoute = "unmatched"

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
