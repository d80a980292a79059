package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ntereshin/eventform-gateway/internal/identity"
)

// Context ключи для gin.Context.
const (
	ContextEmailKey = "email"
	ContextTokenKey = "accessToken"
)

// AuthMiddleware проверяет bearer токен провайдера идентичности и
// доменный фильтр: заявки подают только с университетских адресов.
// Просроченный токен отличается от невалидного — клиент по AUTH_EXPIRED
// делает полный выход и уводит пользователя на вход.
func AuthMiddleware(tokens *identity.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		email, err := tokens.ParseAccess(raw)
		if err != nil {
			if errors.Is(err, identity.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Session expired. Please sign in again.",
					"code":  "AUTH_EXPIRED",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token"})
			return
		}

		if !tokens.IsInstitutionalEmail(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Only institutional accounts may access this service",
				"code":  "PERMISSION_DENIED",
			})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Set(ContextTokenKey, raw)
		c.Next()
	}
}
