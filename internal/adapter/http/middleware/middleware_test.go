package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/infrastructure/auth"
	"propostas_api/internal/infrastructure/metrics"
	mock_interfaces "propostas_api/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

const testSecret = "middleware-test-secret"

func newProtectedRouter(t *testing.T, roles *mock_interfaces.MockIRoleRepository, admin bool) (*gin.Engine, *auth.Sessions) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessions, err := auth.NewSessions(testSecret, roles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chain := []gin.HandlerFunc{RequireSession(sessions)}
	if admin {
		chain = append(chain, RequireAdmin())
	}
	chain = append(chain, func(c *gin.Context) {
		s, ok := auth.FromContext(c.Request.Context())
		if !ok {
			t.Fatalf("session missing from context")
		}
		c.String(http.StatusOK, s.UserID)
	})

	r := gin.New()
	r.GET("/v1/protected", chain...)
	return r, sessions
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, _ := newProtectedRouter(t, mock_interfaces.NewMockIRoleRepository(ctrl), false)

		if w := get(r, ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, _ := newProtectedRouter(t, mock_interfaces.NewMockIRoleRepository(ctrl), false)

		if w := get(r, "Basic abc"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, _ := newProtectedRouter(t, mock_interfaces.NewMockIRoleRepository(ctrl), false)

		if w := get(r, "Bearer not-a-jwt"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("role store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := mock_interfaces.NewMockIRoleRepository(ctrl)
		roles.EXPECT().GetRole(gomock.Any(), "user-1").Return(entities.Role(""), errors.New("db down"))
		r, sessions := newProtectedRouter(t, roles, false)

		token, _ := sessions.Issue("user-1", "u@x.com", time.Minute)
		if w := get(r, "Bearer "+token); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := mock_interfaces.NewMockIRoleRepository(ctrl)
		roles.EXPECT().GetRole(gomock.Any(), "user-1").Return(entities.Role(""), nil)
		r, sessions := newProtectedRouter(t, roles, false)

		token, _ := sessions.Issue("user-1", "u@x.com", time.Minute)
		w := get(r, "Bearer "+token)
		if w.Code != http.StatusOK || w.Body.String() != "user-1" {
			t.Fatalf("expected 200 user-1, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("plain user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := mock_interfaces.NewMockIRoleRepository(ctrl)
		roles.EXPECT().GetRole(gomock.Any(), "user-1").Return(entities.RoleUser, nil)
		r, sessions := newProtectedRouter(t, roles, true)

		token, _ := sessions.Issue("user-1", "", time.Minute)
		if w := get(r, "Bearer "+token); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := mock_interfaces.NewMockIRoleRepository(ctrl)
		roles.EXPECT().GetRole(gomock.Any(), "admin-1").Return(entities.RoleAdmin, nil)
		r, sessions := newProtectedRouter(t, roles, true)

		token, _ := sessions.Issue("admin-1", "", time.Minute)
		if w := get(r, "Bearer "+token); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/v1/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/v1/items/:id", "204")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/items/42", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("expected counter %v, got %v", before+1, got)
	}
}
