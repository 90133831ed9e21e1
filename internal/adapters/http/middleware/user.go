package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/stack4devs/stack4devs/internal/adapters/http/dto"
	"github.com/stack4devs/stack4devs/internal/platform/logging"
)

// ContextKeyUser is the gin key holding the signed-in username.
const ContextKeyUser = "user"

// SignInRequiredMessage is returned when a gated route is hit signed out.
const SignInRequiredMessage = "Sign in required"

// UserResolver reads the signed-in local user. "" means nobody.
type UserResolver interface {
	CurrentUser(ctx context.Context) (string, error)
}

// RequireUser resolves the profile's current user and rejects the request
// with 401 when nobody is signed in. The username lands in the gin
// context and on the request logger.
func RequireUser(users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		user, err := users.CurrentUser(ctx)
		if err != nil {
			logging.FromContext(ctx).ErrorContext(ctx, "resolving current user", slog.Any("error", err))
			abortWithError(c, dto.ErrorCodeUnavailable, "profile store unavailable")

			return
		}

		if user == "" {
			abortWithError(c, dto.ErrorCodeUnauthorized, SignInRequiredMessage)
			return
		}

		c.Set(ContextKeyUser, user)
		c.Request = c.Request.WithContext(logging.WithUser(ctx, user))

		c.Next()
	}
}

// GetUser returns the username RequireUser stored, or "".
func GetUser(c *gin.Context) string {
	return c.GetString(ContextKeyUser)
}
