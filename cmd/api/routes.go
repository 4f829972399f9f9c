package main

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.requestIDMiddleware())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	})

	// CORS Middleware
	trusted := app.Config.GetCORSOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if slices.Contains(trusted, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/healthz", app.Handler.GetHealth)

	v1 := r.Group("/api/v1")
	v1.Use(app.memoMiddleware())
	{
		v1.GET("/trip", app.Handler.GetTrip)
		v1.GET("/trip/days", app.Handler.GetTripDays)
		v1.GET("/trip/password", app.Handler.GetPasswordConfig)
		v1.GET("/pages/:id/blocks", app.Handler.GetPageBlocks)
	}

	return r
}
