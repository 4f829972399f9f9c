package handler

import (
	"github.com/dennisjyw/NotionJourney/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetTrip returns the projected trip metadata and the date-sorted itinerary
func (h *Handler) GetTrip(c *gin.Context) {
	data, err := h.Trips.TripData(c.Request.Context())
	if err != nil {
		h.respondUpstreamError(c, "get_trip", err)
		return
	}

	h.Logger.Info("get_trip: trip data fetched",
		zap.Int("items", len(data.Itinerary)),
	)

	response.OK(c, data)
}

// GetTripDays returns the itinerary grouped into 1-based day buckets
func (h *Handler) GetTripDays(c *gin.Context) {
	days, err := h.Trips.Days(c.Request.Context())
	if err != nil {
		h.respondUpstreamError(c, "get_trip_days", err)
		return
	}

	h.Logger.Info("get_trip_days: itinerary grouped",
		zap.Int("days", len(days)),
	)

	response.OK(c, gin.H{"days": days})
}

// GetPasswordConfig returns the configured gate password, null when absent.
// The lookup degrades to null on any fetch failure, so this endpoint never
// errors.
func (h *Handler) GetPasswordConfig(c *gin.Context) {
	password := h.Trips.PasswordConfig(c.Request.Context())
	response.OK(c, gin.H{"password": password})
}
