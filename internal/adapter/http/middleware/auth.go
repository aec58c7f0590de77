package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"propostas_api/internal/infrastructure/auth"
	"propostas_api/pkg"

	"github.com/gin-gonic/gin"
)

// SessionOpener is satisfied by *auth.Sessions.
type SessionOpener interface {
	Open(ctx context.Context, token string) (*auth.Session, error)
}

var _ SessionOpener = (*auth.Sessions)(nil)

// RequireSession opens a session from the bearer token and stores it in the
// request context for the rest of the chain. The session is closed once
// the handlers return.
func RequireSession(sessions SessionOpener) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authorization token required", http.StatusUnauthorized))
			return
		}

		session, err := sessions.Open(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrMissingToken) {
				slog.Debug("[auth][middleware] rejected token", "error", err)
				abort(c, pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Invalid or expired token", http.StatusUnauthorized))
				return
			}
			slog.Error("[auth][middleware] could not open session", "error", err)
			abort(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
			return
		}
		defer session.Close()

		c.Request = c.Request.WithContext(auth.WithSession(c.Request.Context(), session))
		c.Next()
	}
}

// RequireAdmin must run after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := auth.FromContext(c.Request.Context())
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authorization token required", http.StatusUnauthorized))
			return
		}
		if !session.IsAdmin() {
			slog.Info("[auth][middleware] admin route denied", "user_id", session.UserID, "path", c.FullPath())
			abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Administrator role required", http.StatusForbidden))
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
