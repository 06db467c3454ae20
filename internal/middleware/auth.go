// Package middleware provides HTTP middleware for the accounts service.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VistorGiese/accounts-service/internal/apperrors"
	"github.com/VistorGiese/accounts-service/internal/service"
)

const (
	// ContextUserIDKey is the gin context key holding the authenticated user id.
	ContextUserIDKey = "auth_user_id"
	// ContextUsernameKey is the gin context key holding the authenticated username.
	ContextUsernameKey = "auth_username"
)

// RequireAuth returns middleware that guards protected operations. It
// extracts the bearer token from the Authorization header, validates it and
// injects the authenticated identity into the request context. On failure
// the request is aborted and the wrapped handler never runs.
//
// A missing header or a missing Bearer scheme yields 401; a token that
// fails signature, structural or expiry checks yields 403.
func RequireAuth(jwtService service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authorization token missing",
			})
			return
		}

		claims, err := jwtService.Validate(token)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": message,
			})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth.
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", apperrors.ErrTokenMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", apperrors.ErrTokenMissing
	}
	return parts[1], nil
}
