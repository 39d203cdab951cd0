package obs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandlers exposes liveness and readiness probes.
type HealthHandlers struct {
	Ready func() error
}

// Livez always answers OK while the process is serving.
func (h HealthHandlers) Livez(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Readyz answers OK once the backing stores are reachable.
func (h HealthHandlers) Readyz(c *gin.Context) {
	if h.Ready != nil {
		if err := h.Ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
			return
		}
	}
	c.Status(http.StatusOK)
}
