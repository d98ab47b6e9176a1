package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-publishing-platform/internal/domain"
	"blog-publishing-platform/internal/logger"
)

const (
	// SessionCookie is the cookie name carrying the session token
	SessionCookie = "session"
	// UserKey is the context key for the authenticated principal
	UserKey = "current_user"
)

// SessionResolver resolves a session token to the authenticated user.
type SessionResolver interface {
	UserFromToken(ctx context.Context, token string) (*domain.User, error)
}

// Auth middleware resolves the session cookie to a principal and stores it in
// the request context. Requests without a valid session pass through with no
// principal set; handlers that require one use RequireUser.
func Auth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := resolver.UserFromToken(c.Request.Context(), token)
		if err != nil || user == nil {
			// Stale cookie, proceed unauthenticated. A failure other than
			// an unknown token means storage trouble; log it before
			// degrading.
			if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
				logger.ErrorContext(c.Request.Context(), "Failed to resolve session",
					slog.String("error", err.Error()))
			}
			c.Next()
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireUser aborts with 401 when no authenticated principal is present.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated principal from the gin context,
// or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *domain.User {
	if v, exists := c.Get(UserKey); exists {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}
