package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ntereshin/eventform-gateway/internal/models"
	"github.com/ntereshin/eventform-gateway/internal/pkg/apperror"
)

// Client — клиент backend API заявок. Все вызовы несут bearer токен
// пользователя; шлюз не держит собственных учётных данных к backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт экземпляр клиента.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope — обёртка ответов чтения: backend заворачивает полезную
// нагрузку в {"data": ...}, но create/update могут отдавать запись и
// без обёртки.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// apiError — тело ответа при отказе: {error} либо {message}.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Create выполняет POST /api/proposal.
func (c *Client) Create(ctx context.Context, token string, payload *models.ProposalPayload) (*models.ProposalRecord, error) {
	var rec models.ProposalRecord
	if err := c.do(ctx, http.MethodPost, "/api/proposal", token, payload, &rec, "Failed to submit proposal"); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Get выполняет GET /api/proposal/{id}.
func (c *Client) Get(ctx context.Context, token, id string) (*models.ProposalRecord, error) {
	var rec models.ProposalRecord
	if err := c.do(ctx, http.MethodGet, "/api/proposal/"+id, token, nil, &rec, "Failed to load proposal data"); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update выполняет PUT /api/proposal/{id}.
func (c *Client) Update(ctx context.Context, token, id string, payload *models.ProposalPayload) (*models.ProposalRecord, error) {
	var rec models.ProposalRecord
	if err := c.do(ctx, http.MethodPut, "/api/proposal/"+id, token, payload, &rec, "Failed to update proposal. Please try again."); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete выполняет DELETE /api/proposal/{id}.
func (c *Client) Delete(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/proposal/"+id, token, nil, nil, "Failed to delete proposal")
}

// ListMine выполняет GET /api/proposal/my-proposals.
func (c *Client) ListMine(ctx context.Context, token string) ([]models.ProposalRecord, error) {
	var recs []models.ProposalRecord
	if err := c.do(ctx, http.MethodGet, "/api/proposal/my-proposals", token, nil, &recs, "Failed to fetch proposals"); err != nil {
		return nil, err
	}
	return recs, nil
}

// do выполняет один HTTP обмен: сериализует тело, проставляет bearer,
// разбирает ответ и переводит отказ в ошибку таксономии. Сетевые сбои
// отличаются от отказов сервера: первые — NETWORK_UNAVAILABLE с общим
// сообщением, вторые несут текст сервера дословно.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}, fallbackMsg string) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: сериализация тела: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("upstream: создание запроса: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeNetwork, "Network error. Please ensure the backend server is running.")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeNetwork, "Network error. Please ensure the backend server is running.")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp.StatusCode, raw, fallbackMsg)
	}

	if out == nil {
		return nil
	}
	return decodeRecord(raw, out)
}

// statusError переводит не-2xx ответ в ошибку таксономии. Сообщение
// сервера отдаётся дословно, общий текст — только если сервер
// не прислал своего.
func (c *Client) statusError(status int, raw []byte, fallbackMsg string) error {
	var body apiError
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = fallbackMsg
	}

	switch status {
	case http.StatusUnauthorized:
		return apperror.ErrAuthExpired
	case http.StatusForbidden:
		return apperror.New(apperror.ErrCodePermissionDenied, message)
	case http.StatusNotFound:
		return apperror.New(apperror.ErrCodeNotFound, message)
	default:
		return apperror.New(apperror.ErrCodeServerRejected, message)
	}
}

// decodeRecord разбирает тело ответа: сперва пробует обёртку {data},
// затем запись без обёртки. Поля вне схемы — ошибка, а не молчаливый
// дефолт: форма не должна гидрироваться из записи незнакомой формы.
func decodeRecord(raw []byte, out interface{}) error {
	payload := raw

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		payload = env.Data
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeServerRejected, "Backend returned an unexpected response shape")
	}
	return nil
}
