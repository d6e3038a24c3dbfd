package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roteiro/internal/api/controllers"
	"roteiro/internal/infra"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
	"roteiro/pkg/middleware"
	"roteiro/pkg/utils"
)

func newChecklistRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := infra.NewMemoryBlobStore()
	svc := services.NewChecklistService(repositories.NewChecklistRepository(store))
	controller := controllers.NewChecklistController(svc)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "test-user")
		c.Set("email", "test@email.com")
		c.Set("role", role)
		c.Next()
	})

	r.GET("/api/checklist", controller.List)
	r.POST("/api/checklist", controller.Create)
	r.PATCH("/api/checklist/:id/toggle", controller.Toggle)
	r.DELETE("/api/checklist/:id", controller.Remove)
	return r
}

func TestChecklistEndpointList(t *testing.T) {
	r := newChecklistRouter(utils.RoleMember)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/checklist", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, data["total"])
	assert.EqualValues(t, 1, data["done"])
}

func TestChecklistEndpointCreateAsAdmin(t *testing.T) {
	r := newChecklistRouter(utils.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checklist", strings.NewReader(`{"title":"Pack chargers"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Pack chargers", data["title"])
	assert.Equal(t, "test-user", data["created_by"])
}

func TestChecklistEndpointCreateForbiddenForMember(t *testing.T) {
	r := newChecklistRouter(utils.RoleMember)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checklist", strings.NewReader(`{"title":"Pack chargers"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChecklistEndpointToggleOpenToMember(t *testing.T) {
	r := newChecklistRouter(utils.RoleMember)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/checklist/2/toggle", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["done"])
}

func TestChecklistEndpointRemoveUnknownID(t *testing.T) {
	r := newChecklistRouter(utils.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/checklist/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChecklistEndpointMalformedBody(t *testing.T) {
	r := newChecklistRouter(utils.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checklist", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
