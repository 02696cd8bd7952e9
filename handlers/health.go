package handlers

import (
	"errors"
	"net/http"

	"clipper/services"

	"github.com/gin-gonic/gin"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Video AI Clipper API Ready"})
}

// TestStatus reports process liveness and, best-effort, whether the job
// store answers a ping. Connectivity errors are truncated so a long driver
// message does not flood the response.
func TestStatus(c *gin.Context) {
	response := gin.H{
		"backend":  "running",
		"database": "unavailable",
	}

	if err := getServices().Job.PingStore(c.Request.Context()); err == nil {
		response["database"] = "connected"
	} else if !errors.Is(err, services.ErrStoreNotConfigured) {
		msg := err.Error()
		if len(msg) > 60 {
			msg = msg[:60]
		}
		response["database"] = msg
	}

	c.JSON(http.StatusOK, response)
}
