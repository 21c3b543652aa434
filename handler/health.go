package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theoremus-urban-solutions/transit-directions/utils"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RegisterHealthRoutes registers the liveness probe.
func RegisterHealthRoutes(r *gin.RouterGroup) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthResponse{
			Status:    "ok",
			Timestamp: utils.Iso8601Now(),
		})
	})
}
