package status

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ServiceName = "Bo Rangers FC Ticketing System"

// RegisterRoutes mounts the unauthenticated liveness endpoints. Both
// return static payloads and have no side effects.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": ServiceName})
	})

	r.GET("/api/status/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "API is running"})
	})
}
