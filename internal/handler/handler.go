package handler

import (
	"context"
	"encoding/json"

	"github.com/dennisjyw/NotionJourney/internal/notion"
	"github.com/dennisjyw/NotionJourney/pkg/model"
	"github.com/dennisjyw/NotionJourney/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripService is what the handlers need from the trip layer.
type TripService interface {
	TripData(ctx context.Context) (*model.TripData, error)
	Days(ctx context.Context) ([]model.GroupedItinerary, error)
	PasswordConfig(ctx context.Context) *string
	PageBlocks(ctx context.Context, pageID string) ([]json.RawMessage, error)
}

type Handler struct {
	Logger *zap.Logger
	Trips  TripService
}

// respondUpstreamError maps a Notion fetch failure onto the response
// taxonomy. Credential rejections and unresolvable ids get actionable
// messages; anything else carries the original message through.
func (h *Handler) respondUpstreamError(c *gin.Context, op string, err error) {
	h.Logger.Error(op+": notion fetch failed", zap.Error(err))

	switch {
	case notion.IsUnauthorized(err):
		response.Unauthorized(c, "Notion rejected the API key; check NOTION_API_KEY and that the integration has access to the database")
	case notion.IsNotFound(err):
		response.NotFound(c, "Notion database or page not found; check NOTION_DATABASE_ID and that it is shared with the integration")
	default:
		response.InternalError(c, err.Error())
	}
}
