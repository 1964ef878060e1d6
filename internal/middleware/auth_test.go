package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KEYAJANI/demiland-sub000/internal/config"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/security"
)

const testSecret = "middleware-test-secret"

type stubUsers struct {
	user models.User
	err  error
}

func (s stubUsers) GetByID(context.Context, string) (models.User, error) {
	return s.user, s.err
}

type stubSessions struct {
	session models.Session
	err     error
	touched bool
}

func (s *stubSessions) GetByID(context.Context, string) (models.Session, error) {
	return s.session, s.err
}

func (s *stubSessions) Touch(context.Context, string, string, string) error {
	s.touched = true
	return nil
}

func testAuthConfig() *config.AppConfig {
	return &config.AppConfig{Security: config.SecurityConfig{JWTSecret: testSecret, JWTTTL: time.Hour}}
}

func issueToken(t *testing.T, userID, role, sessionID string, ttl time.Duration) string {
	t.Helper()
	token, err := security.GenerateAccessToken(testSecret, userID, "jane@demiland.co", role, sessionID, ttl)
	require.NoError(t, err)
	return token
}

func authRouter(users UserGetter, sessions SessionGetter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(testAuthConfig(), users, sessions), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"userId": user.ID}})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func activeUser(id string, role models.UserRole) models.User {
	return models.User{ID: id, Role: role, IsActive: true}
}

func liveSession(id, userID string) models.Session {
	return models.Session{ID: id, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
}

func TestAuthMissingToken(t *testing.T) {
	router := authRouter(stubUsers{}, &stubSessions{})

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "authentication token required", body["message"])
}

func TestAuthMalformedHeader(t *testing.T) {
	router := authRouter(stubUsers{}, &stubSessions{})

	rec := doRequest(router, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBadToken(t *testing.T) {
	router := authRouter(stubUsers{}, &stubSessions{})

	rec := doRequest(router, "Bearer not-a-valid-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	router := authRouter(stubUsers{}, &stubSessions{})

	token := issueToken(t, "user-1", "user", "sess-1", -time.Minute)
	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSessionOwnerMismatch(t *testing.T) {
	sessions := &stubSessions{session: liveSession("sess-1", "someone-else")}
	router := authRouter(stubUsers{user: activeUser("user-1", models.UserRoleUser)}, sessions)

	token := issueToken(t, "user-1", "user", "sess-1", time.Hour)
	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthExpiredSessionRow(t *testing.T) {
	session := liveSession("sess-1", "user-1")
	session.ExpiresAt = time.Now().Add(-time.Minute)
	router := authRouter(stubUsers{user: activeUser("user-1", models.UserRoleUser)}, &stubSessions{session: session})

	token := issueToken(t, "user-1", "user", "sess-1", time.Hour)
	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthInactiveUser(t *testing.T) {
	user := activeUser("user-1", models.UserRoleUser)
	user.IsActive = false
	router := authRouter(stubUsers{user: user}, &stubSessions{session: liveSession("sess-1", "user-1")})

	token := issueToken(t, "user-1", "user", "sess-1", time.Hour)
	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSuccessAttachesPrincipal(t *testing.T) {
	sessions := &stubSessions{session: liveSession("sess-1", "user-1")}
	router := authRouter(stubUsers{user: activeUser("user-1", models.UserRoleUser)}, sessions)

	token := issueToken(t, "user-1", "user", "sess-1", time.Hour)
	rec := doRequest(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sessions.touched)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			UserID string `json:"userId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "user-1", body.Data.UserID)
}
