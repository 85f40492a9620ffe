package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHello registers the placeholder root endpoint of the plain REST variant.
func RegisterHello(r gin.IRoutes) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})
}
