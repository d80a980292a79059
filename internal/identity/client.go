package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ntereshin/eventform-gateway/internal/pkg/apperror"
)

// User — данные пользователя у провайдера идентичности.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client ходит к провайдеру идентичности по HTTP. Сессией владеет
// браузер; шлюзу нужны только introspection токена и полный выход.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient создаёт экземпляр клиента.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetUser запрашивает пользователя по access токену (GET /auth/v1/user).
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("identity: создание запроса: %w", err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeNetwork, "Network error. Please try again.")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, apperror.ErrAuthExpired
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperror.New(apperror.ErrCodeServerRejected, "Failed to fetch user from identity provider")
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeServerRejected, "Failed to fetch user from identity provider")
	}

	return &user, nil
}

// SignOut выполняет полный выход: провайдер отзывает все refresh токены
// пользователя (POST /auth/v1/logout?scope=global).
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout?scope=global", nil)
	if err != nil {
		return fmt.Errorf("identity: создание запроса: %w", err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeNetwork, "Network error. Please try again.")
	}
	defer resp.Body.Close()

	// Для выхода сойдёт любой 2xx; просроченный токен тоже считается
	// успехом — сессии уже нет.
	if resp.StatusCode >= 200 && resp.StatusCode < 300 || resp.StatusCode == http.StatusUnauthorized {
		return nil
	}

	return apperror.New(apperror.ErrCodeServerRejected, "Failed to sign out")
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)
}
