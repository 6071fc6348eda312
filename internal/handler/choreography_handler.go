package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/powerfrill/showcase-backend-go/internal/models"
	"github.com/powerfrill/showcase-backend-go/internal/service"
	"github.com/powerfrill/showcase-backend-go/pkg/response"
)

// ChoreographyHandler serves scroll choreography frames
type ChoreographyHandler struct {
	service *service.ChoreographyService
}

// NewChoreographyHandler creates a new choreography handler
func NewChoreographyHandler(service *service.ChoreographyService) *ChoreographyHandler {
	return &ChoreographyHandler{service: service}
}

// GetFrame handles GET /api/v1/choreography/frame
func (h *ChoreographyHandler) GetFrame(c *gin.Context) {
	var filter models.FrameFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	frame, err := h.service.GetFrame(filter)
	if err != nil {
		lookupError(c, err)
		return
	}
	response.Success(c, frame)
}

// GetScrollTarget handles GET /api/v1/choreography/scroll-target
func (h *ChoreographyHandler) GetScrollTarget(c *gin.Context) {
	var filter models.ScrollTargetFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	target, err := h.service.GetScrollTarget(filter)
	if err != nil {
		lookupError(c, err)
		return
	}
	response.Success(c, target)
}

// GetPresets handles GET /api/v1/choreography/presets
func (h *ChoreographyHandler) GetPresets(c *gin.Context) {
	response.Success(c, gin.H{
		"default": h.service.Default(),
		"presets": h.service.Presets(),
	})
}

func lookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownSequence):
		response.Error(c, http.StatusNotFound, "Sequence not found", err)
	case errors.Is(err, service.ErrUnknownPreset):
		response.BadRequest(c, "Unknown preset", err)
	case errors.Is(err, service.ErrInvalidRange):
		response.BadRequest(c, "Scroll range must be finite", err)
	default:
		response.InternalError(c, "Failed to evaluate choreography", err)
	}
}
