package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KEYAJANI/demiland-sub000/internal/repository"
)

func routedHandlerSet() HandlerSet {
	return HandlerSet{
		log:      zerolog.Nop(),
		cfg:      testCfg(),
		users:    repository.NewUserRepository(nil),
		sessions: repository.NewSessionRepository(nil),
	}
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routedHandlerSet().Register(router)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "unconfigured", body.Database)
	assert.Equal(t, "unconfigured", body.Cache)
	assert.Equal(t, "test", body.Environment)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routedHandlerSet().Register(router)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/profile"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/auth/users"},
		{http.MethodPost, "/api/products"},
		{http.MethodDelete, "/api/products/prod-1"},
		{http.MethodGet, "/api/users/favorites"},
		{http.MethodPut, "/api/users/user-1/role"},
		{http.MethodGet, "/api/analytics/events"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			req := httptest.NewRequest(p.method, p.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}
