package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/auth"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
)

const ContextUserID = "userID"

// TokenVerifier is satisfied by *auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

func AuthMiddleware(tokens TokenVerifier, logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, httperr.CodeUnauthenticated)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, httperr.CodeInvalidToken)
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		if logg != nil {
			c.Request = c.Request.WithContext(logg.WithUserID(c.Request.Context(), claims.UserID))
		}

		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
