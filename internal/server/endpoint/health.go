// Package endpoint holds the operational endpoints mounted outside the API
// surface.
package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/identity/internal/version"
)

// Pinger reports whether a backing component is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health returns a handler that reports service health including store
// connectivity. A nil pinger (in-memory mode) is always healthy.
func Health(serviceName string, store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		httpStatus := http.StatusOK

		components := gin.H{}
		if store != nil {
			if err := store.Ping(c.Request.Context()); err != nil {
				status = "unhealthy"
				httpStatus = http.StatusServiceUnavailable
				components["store"] = "unreachable"
			} else {
				components["store"] = "ok"
			}
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"version":    version.Version,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}
