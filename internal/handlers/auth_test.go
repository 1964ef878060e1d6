package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/KEYAJANI/demiland-sub000/internal/config"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/repository"
	"github.com/KEYAJANI/demiland-sub000/internal/security"
	"github.com/KEYAJANI/demiland-sub000/internal/service"
)

func testCfg() *config.AppConfig {
	return &config.AppConfig{
		Environment: "test",
		Security: config.SecurityConfig{
			JWTSecret:  "handler-test-secret",
			JWTTTL:     time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func newAuthHandlers(t *testing.T) (HandlerSet, *service.MockUserStore, *service.MockSessionStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := service.NewMockUserStore(ctrl)
	sessions := service.NewMockSessionStore(ctrl)

	cfg := testCfg()
	h := HandlerSet{
		log:  zerolog.Nop(),
		cfg:  cfg,
		auth: service.NewAuthService(users, sessions, cfg, zerolog.Nop()),
	}
	return h, users, sessions
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func putJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterUserEndpoint(t *testing.T) {
	h, users, sessions := newAuthHandlers(t)

	users.EXPECT().FindByEmail(gomock.Any(), "jane@demiland.co").Return(models.User{}, repository.ErrUserNotFound)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/register", h.RegisterUser)

	rec := postJSON(router, "/api/auth/register", gin.H{
		"email":     "jane@demiland.co",
		"password":  "s3cret-pass",
		"firstName": "Jane",
		"lastName":  "Doe",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			User  map[string]any `json:"user"`
			Token string         `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "registration successful", body.Message)
	assert.Equal(t, "jane@demiland.co", body.Data.User["email"])
	assert.Equal(t, "user", body.Data.User["role"])

	// The hash must never appear in any response shape.
	for key := range body.Data.User {
		assert.NotContains(t, strings.ToLower(key), "password")
	}

	claims, err := security.ParseAccessToken(body.Data.Token, "handler-test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "jane@demiland.co", claims.Email)
}

func TestRegisterUserInvalidPayload(t *testing.T) {
	h, _, _ := newAuthHandlers(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/register", h.RegisterUser)

	rec := postJSON(router, "/api/auth/register", gin.H{
		"email":     "not-an-email",
		"password":  "s3cret-pass",
		"firstName": "Jane",
		"lastName":  "Doe",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	h, users, _ := newAuthHandlers(t)

	users.EXPECT().FindByEmail(gomock.Any(), "jane@demiland.co").Return(models.User{ID: "existing"}, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/register", h.RegisterUser)

	rec := postJSON(router, "/api/auth/register", gin.H{
		"email":     "jane@demiland.co",
		"password":  "s3cret-pass",
		"firstName": "Jane",
		"lastName":  "Doe",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user with this email already exists")
}

func TestLoginEndpoint(t *testing.T) {
	h, users, sessions := newAuthHandlers(t)

	hash, err := security.HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)

	users.EXPECT().FindByEmail(gomock.Any(), "jane@demiland.co").Return(models.User{
		ID:           "user-1",
		Email:        "jane@demiland.co",
		PasswordHash: hash,
		Role:         models.UserRoleUser,
		IsActive:     true,
	}, nil)
	sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", h.Login)

	rec := postJSON(router, "/api/auth/login", gin.H{"email": "jane@demiland.co", "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	h, users, _ := newAuthHandlers(t)

	hash, err := security.HashPassword("real-pass", bcrypt.MinCost)
	require.NoError(t, err)

	users.EXPECT().FindByEmail(gomock.Any(), "jane@demiland.co").Return(models.User{
		ID:           "user-1",
		PasswordHash: hash,
		IsActive:     true,
	}, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", h.Login)

	rec := postJSON(router, "/api/auth/login", gin.H{"email": "jane@demiland.co", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}
