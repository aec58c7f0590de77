package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"propostas_api/internal/infrastructure/auth"
	"propostas_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidIfMatch  = pkg.NewDomainErrorSimple("INVALID_IF_MATCH", "If-Match must be a proposal version", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
)

var errBadIfMatch = errors.New("invalid If-Match header")

// writeError sends the error body and logs internal failures with their cause.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		slog.Error("[http][handler] request failed", "method", c.Request.Method, "path", c.FullPath(), "error", appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// expectedVersion reads the optional If-Match header. Both 3 and "3"
// (and the weak form W/"3") are accepted.
func expectedVersion(c *gin.Context) (*int, error) {
	raw := strings.TrimSpace(c.GetHeader("If-Match"))
	if raw == "" {
		return nil, nil
	}
	raw = strings.TrimPrefix(raw, "W/")
	raw = strings.Trim(raw, `"`)
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return nil, errBadIfMatch
	}
	return &v, nil
}

// setVersion exposes the proposal version as ETag for the next If-Match.
func setVersion(c *gin.Context, version int) {
	if version > 0 {
		c.Header("ETag", strconv.Quote(strconv.Itoa(version)))
	}
}

func currentSession(c *gin.Context) (*auth.Session, bool) {
	return auth.FromContext(c.Request.Context())
}
