package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/qa-service/pkg/logger"
	"github.com/gogotex/qa-service/pkg/metrics"
)

// Observe logs each request and counts it in metrics.HTTPRequests.
// The route label is the matched gin pattern so ids in paths don't explode
// label cardinality; unmatched requests are labelled "unmatched".
func Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		elapsed := time.Since(start)
		if status >= 500 {
			logger.Errorf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
			return
		}
		logger.Debugf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
