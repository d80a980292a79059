package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ntereshin/eventform-gateway/internal/dto"
)

func catalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/catalog", NewCatalogHandler().Options)
	return r
}

func TestCatalogHandler_Options(t *testing.T) {
	r := catalogRouter()

	req, _ := http.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CatalogResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Clubs)
	assert.NotEmpty(t, resp.Venues)
	assert.Len(t, resp.EventTypes, 4)
	assert.NotEmpty(t, resp.WorkshopTypes)
}

func TestCatalogHandler_CollaboratorsExcludeOwnClub(t *testing.T) {
	r := catalogRouter()

	// Без фильтра список полный.
	req, _ := http.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var full dto.CatalogResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &full))
	assert.NotEmpty(t, full.Collaborators)

	ownClub := full.Collaborators[0].Value

	req, _ = http.NewRequest(http.MethodGet, "/catalog?cc_name="+url.QueryEscape(ownClub), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var filtered dto.CatalogResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	assert.Len(t, filtered.Collaborators, len(full.Collaborators)-1)
	for _, opt := range filtered.Collaborators {
		assert.NotEqual(t, ownClub, opt.Value)
	}
}
