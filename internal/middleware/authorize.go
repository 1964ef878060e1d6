package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

// RequireRoles must run after Auth. Principals outside the allowed set get
// a 403; a missing principal is a 401.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortEnvelope(c, http.StatusUnauthorized, "authentication token required")
			return
		}

		if _, ok := roleSet[user.Role]; !ok {
			abortEnvelope(c, http.StatusForbidden, "insufficient permissions")
			return
		}

		c.Next()
	}
}

// RequireAdmin admits admin and super-admin principals.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin, models.UserRoleSuperAdmin)
}
