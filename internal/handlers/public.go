package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoshare/ecoshare/internal/services"
)

type PublicHandler struct {
	feedService *services.FeedService
}

func NewPublicHandler(feedService *services.FeedService) *PublicHandler {
	return &PublicHandler{feedService: feedService}
}

// Stats godoc
// @Summary Platform-wide donation counters
// @Description Donation counts by lifecycle status, for the public landing page
// @Tags public
// @Produce json
// @Success 200 {object} services.PlatformStats
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func (h *PublicHandler) Stats(c *gin.Context) {
	stats, err := h.feedService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
