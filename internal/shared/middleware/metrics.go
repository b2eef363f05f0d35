package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore-api/pkg/metrics"
)

// Metrics ghi số request và latency theo route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
