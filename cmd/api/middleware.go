package main

import (
	"github.com/dennisjyw/NotionJourney/internal/trip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDMiddleware tags every request with an id for log correlation,
// honoring one supplied by the caller.
func (app *application) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// memoMiddleware gives each request its own fetch memo, so every trip
// operation handled during it shares one underlying Notion query.
func (app *application) memoMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(trip.WithMemo(c.Request.Context()))
		c.Next()
	}
}
