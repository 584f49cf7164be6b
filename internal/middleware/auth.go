package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/jwt"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/response"
)

const contextKeyUser = "admin_user"

// Auth returns a middleware that enforces a valid admin session token.
// Expired or malformed tokens fail closed: the request is treated as
// unauthenticated and rejected.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(contextKeyUser, models.AdminUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Name:  claims.Name,
			Role:  claims.Role,
		})
		c.Next()
	}
}

// CurrentUser extracts the authenticated admin identity from context.
func CurrentUser(c *gin.Context) models.AdminUser {
	v, _ := c.Get(contextKeyUser)
	u, _ := v.(models.AdminUser)
	return u
}

// IsAuthenticated returns true if the request carries a valid session.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUser(c).ID != ""
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
