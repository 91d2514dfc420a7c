package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stakeflow/stakeflow/internal/domain/entity"
	"github.com/stakeflow/stakeflow/pkg/helpers"
	"github.com/stakeflow/stakeflow/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey = "userID"
	CtxEmailKey  = "userEmail"
	CtxRoleKey   = "userRole"
)

// Auth reads the Authorization header, validates the bearer token and
// injects the caller's identity into the Gin context. A missing header is
// 403; a malformed, tampered or expired token is 401.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusForbidden, "A token is required for authentication", nil)
			return
		}
		token := bearerToken(header)
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid Token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxEmailKey, claims.Email)
		c.Set(CtxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRoleKey) != string(entity.RoleAdmin) {
			response.AbortError(c, http.StatusForbidden, "Access denied. Admins only.", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	// No scheme prefix; let token parsing reject it if it is not a JWT.
	return header
}
