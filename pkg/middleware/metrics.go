package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foliocms/foliocms/pkg/metrics"
)

// Metrics records per-request counters. The registered route pattern is
// used as the label (not the raw path) to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
