package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ntereshin/eventform-gateway/internal/dto"
	"github.com/ntereshin/eventform-gateway/internal/http/middleware"
	"github.com/ntereshin/eventform-gateway/internal/logger"
	"github.com/ntereshin/eventform-gateway/internal/pkg/apperror"
)

var errNoIdentity = errors.New("handlers: идентичность не найдена в контексте")

// currentEmail извлекает email пользователя из контекста.
func currentEmail(c *gin.Context) (string, error) {
	raw, exists := c.Get(middleware.ContextEmailKey)
	if !exists {
		return "", errNoIdentity
	}

	email, ok := raw.(string)
	if !ok {
		return "", errNoIdentity
	}

	return email, nil
}

// currentToken извлекает исходный access токен из контекста: его же
// шлюз пересылает backend API как bearer.
func currentToken(c *gin.Context) (string, error) {
	raw, exists := c.Get(middleware.ContextTokenKey)
	if !exists {
		return "", errNoIdentity
	}

	token, ok := raw.(string)
	if !ok {
		return "", errNoIdentity
	}

	return token, nil
}

// sessionID парсит параметр sessionId. UUIDValidator в роутере уже
// отсёк мусор, здесь ошибка возможна только при неправильной сборке маршрутов.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid sessionId format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит ошибку в HTTP ответ. AppError несёт статус и
// карту полей; всё остальное маскируется как внутренняя ошибка.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, dto.ErrorResponse{
			Error:  appErr.Message,
			Code:   string(appErr.Code),
			Fields: appErr.Fields,
		})
		return
	}

	logger.WithComponent("handlers").WithError(err).Error("необработанная ошибка запроса")
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
