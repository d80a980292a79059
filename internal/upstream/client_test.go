package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ntereshin/eventform-gateway/internal/models"
	"github.com/ntereshin/eventform-gateway/internal/pkg/apperror"
)

func recordJSON() string {
	rec := map[string]interface{}{
		"id":                      "7d8f3a2e-0000-0000-0000-000000000001",
		"cc_name":                 "IEEE Computer Society",
		"type":                    "tech_talk",
		"event_title":             "Intro to Distributed Systems",
		"expected_capacity":       150,
		"duration":                2,
		"event_start_date":        "2026-01-10",
		"event_start_time":        "10:00",
		"event_end_date":          "2026-01-10",
		"event_end_time":          "12:00",
		"expected_sponsorship":    5000,
		"expected_prize_money":    nil,
		"is_overnight":            false,
		"poc_name":                "Arjun Mehta",
		"poc_registration_number": "21BCE1234",
		"poc_contact":             "9876543210",
		"collaborating_cc":        nil,
		"preferred_venue":         "Anna Auditorium",
		"description":             "A talk about distributed systems",
		"competition_structure":   nil,
		"competition_rules":       nil,
		"judgement_criteria":      nil,
		"faqs":                    nil,
		"team_size":               nil,
		"workshop_outcome":        nil,
		"workshop_type":           nil,
		"speaker_name":            "Dr. Ramesh Kumar",
		"eligibility_first_year":  true,
		"eligibility_second_year": false,
		"eligibility_third_year":  false,
		"eligibility_fourth_year": false,
		"submitted_by":            "arjun.mehta2021@vitstudent.ac.in",
		"created_at":              "2025-12-01T09:00:00Z",
		"updated_at":              "2025-12-01T09:00:00Z",
	}
	raw, _ := json.Marshal(rec)
	return string(raw)
}

func TestClient_Get_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/proposal/abc", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":` + recordJSON() + `}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	rec, err := c.Get(context.Background(), "token-123", "abc")

	assert.NoError(t, err)
	assert.Equal(t, "Intro to Distributed Systems", rec.EventTitle)
	assert.Equal(t, "arjun.mehta2021@vitstudent.ac.in", rec.SubmittedBy)
	assert.Nil(t, rec.ExpectedPrizeMoney)
}

func TestClient_Create_DecodesBareRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/proposal", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload models.ProposalPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Intro to Distributed Systems", payload.EventTitle)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(recordJSON()))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	rec, err := c.Create(context.Background(), "token-123", &models.ProposalPayload{
		EventTitle: "Intro to Distributed Systems",
	})

	assert.NoError(t, err)
	assert.Equal(t, "7d8f3a2e-0000-0000-0000-000000000001", rec.ID)
}

func TestClient_Get_UnknownFieldRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"abc","surprise_field":true}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Get(context.Background(), "token-123", "abc")

	assert.Error(t, err)
	appErr, ok := apperror.As(err)
	assert.True(t, ok)
	assert.Equal(t, "Backend returned an unexpected response shape", appErr.Message)
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{http.StatusUnauthorized, `{"error":"jwt expired"}`, func(t *testing.T, err error) {
			assert.True(t, apperror.IsAuthExpired(err))
		}},
		{http.StatusForbidden, `{"error":"You do not have permission to edit this proposal"}`, func(t *testing.T, err error) {
			assert.True(t, apperror.IsPermissionDenied(err))
			appErr, _ := apperror.As(err)
			assert.Equal(t, "You do not have permission to edit this proposal", appErr.Message)
		}},
		{http.StatusNotFound, `{"message":"Proposal not found"}`, func(t *testing.T, err error) {
			assert.True(t, apperror.IsNotFound(err))
			appErr, _ := apperror.As(err)
			assert.Equal(t, "Proposal not found", appErr.Message)
		}},
		{http.StatusInternalServerError, `{"error":"database exploded"}`, func(t *testing.T, err error) {
			appErr, ok := apperror.As(err)
			assert.True(t, ok)
			assert.Equal(t, apperror.ErrCodeServerRejected, appErr.Code)
			// Текст сервера уходит наружу дословно.
			assert.Equal(t, "database exploded", appErr.Message)
		}},
		{http.StatusBadGateway, `not json at all`, func(t *testing.T, err error) {
			appErr, ok := apperror.As(err)
			assert.True(t, ok)
			// Без текста сервера используется общее сообщение операции.
			assert.Equal(t, "Failed to load proposal data", appErr.Message)
		}},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(tc.body))
		}))

		c := NewClient(srv.URL, 5*time.Second)
		_, err := c.Get(context.Background(), "token-123", "abc")
		assert.Error(t, err, "status=%d", tc.status)
		tc.check(t, err)

		srv.Close()
	}
}

func TestClient_NetworkErrorMapped(t *testing.T) {
	// Сервер закрыт — соединение откажет.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Get(context.Background(), "token-123", "abc")

	assert.True(t, apperror.IsNetwork(err))
	appErr, _ := apperror.As(err)
	assert.Equal(t, "Network error. Please ensure the backend server is running.", appErr.Message)
}

func TestClient_ListMine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/proposal/my-proposals", r.URL.Path)
		w.Write([]byte(`{"data":[` + recordJSON() + `]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	recs, err := c.ListMine(context.Background(), "token-123")

	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, "Intro to Distributed Systems", recs[0].EventTitle)
}

func TestClient_Delete_NoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	assert.NoError(t, c.Delete(context.Background(), "token-123", "abc"))
}
