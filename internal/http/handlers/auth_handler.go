package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ntereshin/eventform-gateway/internal/dto"
	"github.com/ntereshin/eventform-gateway/internal/service"
)

// AuthHandler — операции с провайдером идентичности от имени пользователя.
type AuthHandler struct {
	idp service.IdentityProvider
}

// NewAuthHandler создаёт auth handler.
func NewAuthHandler(idp service.IdentityProvider) *AuthHandler {
	return &AuthHandler{idp: idp}
}

// Me обрабатывает GET /api/me — профиль пользователя у провайдера.
func (h *AuthHandler) Me(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	user, err := h.idp.GetUser(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

// SignOut обрабатывает POST /api/auth/signout — полный выход, провайдер
// отзывает все refresh токены пользователя.
func (h *AuthHandler) SignOut(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization required"})
		return
	}

	if err := h.idp.SignOut(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
