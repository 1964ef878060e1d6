package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KEYAJANI/demiland-sub000/internal/config"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/security"
)

const (
	ContextUser   = "current_user"
	ContextClaims = "access_claims"
)

type UserGetter interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

type SessionGetter interface {
	GetByID(ctx context.Context, id string) (models.Session, error)
	Touch(ctx context.Context, sessionID string, ip string, userAgent string) error
}

// Auth gates bearer-protected routes. It fails closed: any problem with
// the token, its session row, or the owning account yields a 401.
func Auth(cfg *config.AppConfig, users UserGetter, sessions SessionGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortEnvelope(c, http.StatusUnauthorized, "authentication token required")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseAccessToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			abortEnvelope(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		session, err := sessions.GetByID(c.Request.Context(), claims.SessionID)
		if err != nil || session.UserID != claims.UserID || session.ExpiresAt.Before(time.Now()) {
			abortEnvelope(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || !user.IsActive {
			abortEnvelope(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		_ = sessions.Touch(c.Request.Context(), session.ID, c.ClientIP(), c.GetHeader("User-Agent"))

		c.Set(ContextClaims, *claims)
		c.Set(ContextUser, user)

		c.Next()
	}
}

// CurrentUser returns the principal attached by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get(ContextUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}

// CurrentClaims returns the decoded token claims attached by Auth.
func CurrentClaims(c *gin.Context) (security.AccessClaims, bool) {
	claimsVal, exists := c.Get(ContextClaims)
	if !exists {
		return security.AccessClaims{}, false
	}
	claims, ok := claimsVal.(security.AccessClaims)
	return claims, ok
}

func abortEnvelope(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
