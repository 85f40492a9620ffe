package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Readiness reports whether each named dependency is usable.
type Readiness func(ctx context.Context) map[string]bool

// RegisterHealth registers /health (liveness) and /ready (readiness).
// /ready answers 200 only when every dependency reported by ready is true.
func RegisterHealth(r gin.IRoutes, started time.Time, backend string, ready Readiness) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps := ready(ctx)
		ok := true
		for _, v := range deps {
			if !v {
				ok = false
			}
		}
		uptime := time.Since(started).String()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "backend": backend, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "backend": backend, "uptime": uptime})
	})
}
