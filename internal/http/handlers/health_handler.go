package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler — проверка живости шлюза.
type HealthHandler struct{}

// NewHealthHandler создаёт health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
