package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ntereshin/eventform-gateway/internal/dto"
	"github.com/ntereshin/eventform-gateway/internal/models"
)

// CatalogHandler отдаёт статические перечисления для селектов формы.
type CatalogHandler struct{}

// NewCatalogHandler создаёт catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Options обрабатывает GET /api/catalog. Параметр cc_name фильтрует
// варианты коллаборации: клуб не может коллаборировать сам с собой.
func (h *CatalogHandler) Options(c *gin.Context) {
	ccName := c.Query("cc_name")

	c.JSON(http.StatusOK, dto.CatalogResponse{
		Clubs:         models.ClubOptions(),
		Collaborators: models.CollaboratorOptions(ccName),
		Venues:        models.VenueOptions,
		EventTypes:    models.EventTypeOptions,
		WorkshopTypes: models.WorkshopTypeOptions,
	})
}
