package identity

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("identity: срок действия токена истёк")
	ErrTokenInvalid = errors.New("identity: токен невалиден")
)

// TokenManager проверяет access токены провайдера идентичности.
// Провайдер подписывает их HS256 секретом проекта и кладёт email
// пользователя в клеймы, поэтому проверка выполняется локально,
// без похода по сети.
type TokenManager struct {
	secret         []byte
	allowedDomains []string
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, allowedDomains []string) *TokenManager {
	return &TokenManager{
		secret:         []byte(secret),
		allowedDomains: allowedDomains,
	}
}

// ParseAccess проверяет подпись и срок действия токена и извлекает email.
func (m *TokenManager) ParseAccess(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrTokenInvalid
	}

	return email, nil
}

// IsInstitutionalEmail проверяет, что адрес принадлежит одному из
// разрешённых университетских доменов.
func (m *TokenManager) IsInstitutionalEmail(email string) bool {
	lower := strings.ToLower(email)
	for _, domain := range m.allowedDomains {
		if strings.HasSuffix(lower, "@"+strings.ToLower(domain)) {
			return true
		}
	}
	return false
}
