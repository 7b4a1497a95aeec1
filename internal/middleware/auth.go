package middleware

import (
	"errors"
	"strings"

	"github.com/brightpage/admin-core/internal/pkg/jwt"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const ContextKeyAdminID = "admin_id"

// Auth returns a middleware that enforces admin JWT authentication. Invalid,
// expired or missing tokens are rejected with 401 before any handler runs.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validateToken(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyAdminID, claims.AdminID)
		c.Next()
	}
}

// CurrentAdminID extracts the authenticated admin ID from context.
func CurrentAdminID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyAdminID)
	id, _ := v.(string)
	return id
}

// IsAuthenticated reports whether the request carries a valid admin token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentAdminID(c) != ""
}

func validateToken(raw string) (*jwt.Claims, error) {
	if raw == "" {
		return nil, errors.New("token is required")
	}
	return jwt.Parse(raw)
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return normalizeToken(auth)
	}
	return normalizeToken(c.Query("token"))
}

// normalizeToken trims spaces and strips an optional Bearer prefix.
func normalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
