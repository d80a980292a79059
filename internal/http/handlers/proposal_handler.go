package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ntereshin/eventform-gateway/internal/dto"
	"github.com/ntereshin/eventform-gateway/internal/service"
)

// ProposalHandler — листинг, просмотр и удаление заявок. Эти операции
// независимы от сессий формы.
type ProposalHandler struct {
	proposals *service.ProposalService
}

// NewProposalHandler создаёт proposal handler.
func NewProposalHandler(proposals *service.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposals: proposals}
}

// List обрабатывает GET /api/proposals — заявки текущего пользователя.
func (h *ProposalHandler) List(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	records, err := h.proposals.ListMine(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

// Get обрабатывает GET /api/proposals/:id.
func (h *ProposalHandler) Get(c *gin.Context) {
	email, err := currentEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}
	token, err := currentToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	record, err := h.proposals.GetProposal(c.Request.Context(), token, email, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": record})
}

// Delete обрабатывает DELETE /api/proposals/:id. Подтверждение удаления —
// забота клиента; удаление записи, открытой на редактирование в другой
// вкладке, не координируется.
func (h *ProposalHandler) Delete(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	if err := h.proposals.DeleteProposal(c.Request.Context(), token, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
