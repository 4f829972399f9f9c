package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth is the liveness probe
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
