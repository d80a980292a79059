package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ntereshin/eventform-gateway/internal/dto"
	"github.com/ntereshin/eventform-gateway/internal/service"
)

// FormHandler обслуживает жизненный цикл сессий формы: открытие,
// ввод, переключение режима, отмену и отправку.
type FormHandler struct {
	proposals *service.ProposalService
}

// NewFormHandler создаёт form handler.
func NewFormHandler(proposals *service.ProposalService) *FormHandler {
	return &FormHandler{proposals: proposals}
}

// Open обрабатывает POST /api/form — сессия создания с пустым черновиком.
func (h *FormHandler) Open(c *gin.Context) {
	email, err := currentEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	sess := h.proposals.OpenCreate(email)

	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusCreated, dto.NewSessionResponse(sess))
}

// OpenEdit обрабатывает POST /api/form/edit/:proposalId — загрузка
// записи, проверка владельца, гидрация и слепок.
func (h *FormHandler) OpenEdit(c *gin.Context) {
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

	sess, err := h.proposals.OpenEdit(c.Request.Context(), token, email, c.Param("proposalId"))
	if err != nil {
		respondError(c, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusCreated, dto.NewSessionResponse(sess))
}

// Get обрабатывает GET /api/form/:sessionId — текущее состояние сессии.
func (h *FormHandler) Get(c *gin.Context) {
	email, err := currentEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	id, ok := sessionID(c)
	if !ok {
		return
	}

	sess, err := h.proposals.GetSession(id, email)
	if err != nil {
		respondError(c, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

// UpdateField обрабатывает PATCH /api/form/:sessionId/fields — один
// переход пользовательского ввода.
func (h *FormHandler) UpdateField(c *gin.Context) {
	email, err := currentEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	sess, err := h.proposals.UpdateField(id, email, req.Name, req.Value, req.Checked)
	if err != nil {
		respondError(c, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

// StartEdit обрабатывает POST /api/form/:sessionId/edit.
func (h *FormHandler) StartEdit(c *gin.Context) {
	email, err := currentEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	id, ok := sessionID(c)
	if !ok {
		return
	}

	sess, err := h.proposals.StartEdit(id, email)
	if err != nil {
		respondError(c, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

// Cancel обрабатывает POST /api/form/:sessionId/cancel — откат к слепку.
// Диалог подтверждения живёт в клиенте; неподтверждённая отмена сюда
// просто не приходит.
func (h *FormHandler) Cancel(c *gin.Context) {
	email, err := currentEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	id, ok := sessionID(c)
	if !ok {
		return
	}

	sess, err := h.proposals.CancelEdit(id, email)
	if err != nil {
		respondError(c, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

// Submit обрабатывает POST /api/form/:sessionId/submit — полный цикл
// отправки. Ошибка валидации возвращает 400 с картой полей, состояние
// сессии при этом уже содержит те же ошибки для отрисовки.
func (h *FormHandler) Submit(c *gin.Context) {
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

	id, ok := sessionID(c)
	if !ok {
		return
	}

	sess, err := h.proposals.Submit(c.Request.Context(), token, id, email)
	if err != nil {
		respondError(c, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

// Discard обрабатывает DELETE /api/form/:sessionId — пользователь ушёл
// со страницы, интерес к черновику потерян.
func (h *FormHandler) Discard(c *gin.Context) {
	email, err := currentEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.proposals.Discard(id, email); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
