package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/haemolab/lab-api/pkg/metrics"
)

// Metrics records request counts, latencies and server errors. The route
// template is used as the path label so IDs do not explode cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := c.Writer.Status()

		m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if status >= 500 {
			m.HTTPErrors.WithLabelValues(method, path).Inc()
		}
	}
}
