package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "turboscribe/internal/api/errors"
	"turboscribe/internal/app/auth"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// SessionCookie is the fallback cookie checked when no Authorization header
// is present.
const SessionCookie = "ts_session"

// SessionAuth resolves the caller's identity from a bearer token or session
// cookie. A missing or expired session yields 401; a session store that
// cannot be reached yields 503.
func SessionAuth(verifier auth.SessionVerifier, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := verifier.Verify(c.Request.Context(), extractToken(c))
		if err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				HandleError(c, apierrors.NewUnauthorizedError("Unauthorized request"))
				return
			}
			logger.Error("session verification failed",
				"error", err,
				"request_id", c.GetString("request_id"),
			)
			HandleError(c, apierrors.NewServiceUnavailableError("Session service unavailable"))
			return
		}

		c.Set(UserIDKey, session.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by SessionAuth.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
