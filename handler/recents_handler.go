package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/transit-directions/recents"
)

// RecentsHandler handles HTTP requests for recent searches.
type RecentsHandler struct {
	service *recents.Service
	logger  *zap.Logger
}

// NewRecentsHandler creates a new RecentsHandler.
func NewRecentsHandler(service *recents.Service, logger *zap.Logger) *RecentsHandler {
	return &RecentsHandler{service: service, logger: logger}
}

// RegisterRoutes registers all recent-search routes.
func (h *RecentsHandler) RegisterRoutes(r *gin.RouterGroup) {
	s := r.Group("/api/v1/recent-searches")
	{
		s.GET("", h.ListSearches)
		s.POST("", h.CreateSearch)
		s.DELETE("/:id", h.DeleteSearch)
	}
}

// ListSearches returns the newest recent searches.
func (h *RecentsHandler) ListSearches(c *gin.Context) {
	searches, err := h.service.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	dtos := make([]SearchDTO, len(searches))
	for i, s := range searches {
		dtos[i] = toSearchDTO(s)
	}
	success(c, http.StatusOK, dtos)
}

// CreateSearch stores a labelled search.
func (h *RecentsHandler) CreateSearch(c *gin.Context) {
	var req CreateSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	o, err := req.Options.Options()
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	search, err := h.service.Record(c.Request.Context(), req.Label, o)
	if err != nil {
		if errors.Is(err, recents.ErrInvalidLabel) {
			badRequest(c, err.Error())
			return
		}
		h.internalError(c, err)
		return
	}
	success(c, http.StatusCreated, toSearchDTO(search))
}

// DeleteSearch removes a recent search by ID.
func (h *RecentsHandler) DeleteSearch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid search ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, recents.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		h.internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecentsHandler) internalError(c *gin.Context, err error) {
	h.logger.Error("recent search request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
}
