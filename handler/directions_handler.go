package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/transit-directions/response"
)

// DirectionsHandler handles HTTP requests for building directions requests
// and parsing their replies.
type DirectionsHandler struct {
	parser *response.Parser
	logger *zap.Logger
}

// NewDirectionsHandler creates a new DirectionsHandler.
func NewDirectionsHandler(parser *response.Parser, logger *zap.Logger) *DirectionsHandler {
	return &DirectionsHandler{parser: parser, logger: logger}
}

// RegisterRoutes registers all directions routes.
func (h *DirectionsHandler) RegisterRoutes(r *gin.RouterGroup) {
	d := r.Group("/api/v1/directions")
	{
		d.POST("/request", h.BuildRequest)
		d.POST("/parse", h.ParseResponse)
	}
}

// BuildRequest returns the path and query parameters for the given options.
func (h *DirectionsHandler) BuildRequest(c *gin.Context) {
	var req OptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	o, err := req.Options()
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	success(c, http.StatusOK, toRequestDTO(o))
}

// ParseResponse maps a raw directions reply onto waypoints and routes.
func (h *DirectionsHandler) ParseResponse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	o, err := req.Options.Options()
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.parser.Parse(o, req.Payload)
	if err != nil {
		if errors.Is(err, response.ErrMissingOrigin) || errors.Is(err, response.ErrMissingDestination) ||
			errors.Is(err, response.ErrInvalidPayload) {
			h.logger.Info("directions reply rejected", zap.Error(err))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
			return
		}
		h.logger.Error("failed to parse directions reply", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}
	success(c, http.StatusOK, toParseDTO(o, res))
}

func success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}
