package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/agromart/internal/domain/model"
	pkgAuth "github.com/polkiloo/agromart/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user identifier.
	UserIDContextKey = "userID"
	// UserRoleContextKey is a gin context key for the authenticated user role.
	UserRoleContextKey = "userRole"
	authCookieName     = "agromart_token"
)

// TokenParser validates tokens and extracts identity and role.
type TokenParser interface {
	ParseToken(token string) (int64, model.Role, error)
}

// AuthRequired ensures the user is authenticated before reaching a handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, role, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Set(UserRoleContextKey, role)
		c.Next()
	}
}

// RoleRequired restricts a route to the given roles. Admins pass always.
func RoleRequired(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserRoleContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role, _ := val.(model.Role)
		if role == model.RoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatus(http.StatusForbidden)
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the auth token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
