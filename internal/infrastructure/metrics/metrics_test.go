package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", Result(nil))
	assert.Equal(t, "error", Result(errors.New("x")))
}

func TestCountersAndHandler(t *testing.T) {
	before := testutil.ToFloat64(StatusTransitions.WithLabelValues("Enviada"))
	StatusTransitions.WithLabelValues("Enviada").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(StatusTransitions.WithLabelValues("Enviada")))

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "propostas_status_transitions_total"))
}
