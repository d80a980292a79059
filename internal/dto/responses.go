package dto

import (
	"github.com/ntereshin/eventform-gateway/internal/form"
	"github.com/ntereshin/eventform-gateway/internal/models"
)

// SessionResponse is the full state of a form session as rendered by the
// client: draft values, current error map, submission status and mode.
type SessionResponse struct {
	SessionID  string               `json:"session_id"`
	Flow       string               `json:"flow"`
	Mode       string               `json:"mode"`
	ProposalID string               `json:"proposal_id,omitempty"`
	Draft      models.ProposalDraft `json:"draft"`
	Errors     map[string]string    `json:"errors"`
	Status     string               `json:"status"`
	Message    string               `json:"message,omitempty"`
}

// NewSessionResponse builds a response from a live session. The caller
// must hold the session lock.
func NewSessionResponse(s *form.Session) SessionResponse {
	return SessionResponse{
		SessionID:  s.ID.String(),
		Flow:       string(s.Flow),
		Mode:       string(s.Mode),
		ProposalID: s.ProposalID,
		Draft:      s.State.Draft,
		Errors:     s.State.Errors,
		Status:     string(s.State.Status),
		Message:    s.State.Message,
	}
}

// CatalogResponse carries the static enumerations consumed by the form's
// selection widgets.
type CatalogResponse struct {
	Clubs         []models.Option `json:"clubs"`
	Collaborators []models.Option `json:"collaborators"`
	Venues        []models.Option `json:"venues"`
	EventTypes    []models.Option `json:"event_types"`
	WorkshopTypes []models.Option `json:"workshop_types"`
}

// UserResponse mirrors the identity provider's user info.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrorResponse is the uniform error body of the gateway.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}
