package handler

import (
	"github.com/dennisjyw/NotionJourney/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetPageBlocks returns the raw child content blocks of an itinerary item,
// proxied from Notion without transformation
func (h *Handler) GetPageBlocks(c *gin.Context) {
	pageID := c.Param("id")
	if pageID == "" {
		response.BadRequest(c, "page id is required")
		return
	}

	blocks, err := h.Trips.PageBlocks(c.Request.Context(), pageID)
	if err != nil {
		h.respondUpstreamError(c, "get_page_blocks", err)
		return
	}

	h.Logger.Info("get_page_blocks: blocks fetched",
		zap.String("page_id", pageID),
		zap.Int("blocks", len(blocks)),
	)

	response.OK(c, gin.H{"blocks": blocks})
}
