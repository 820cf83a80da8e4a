package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oncabito/sentinela/internal/infrastructure/auth"
	"github.com/oncabito/sentinela/internal/shared/logger"
	"github.com/oncabito/sentinela/internal/shared/utils"
)

const (
	// ContextKeyOperator holds the authenticated operator name.
	ContextKeyOperator = "operator"
	// ContextKeyRole holds the authenticated operator role.
	ContextKeyRole = "role"
)

// Auth validates the Bearer token on admin API requests and stores the
// operator identity in the gin context.
func Auth(jwtService *auth.JWTService, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Bearer token required")
			c.Abort()
			return
		}

		claims, err := jwtService.Verify(token)
		if err != nil {
			log.Debugw("token verification failed", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyOperator, claims.Operator)
		c.Set(ContextKeyRole, string(claims.Role))
		c.Next()
	}
}

// RequireAdmin restricts a route to tokens carrying the admin role. Must run
// after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextKeyRole)
		if role != string(auth.RoleAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "Admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
