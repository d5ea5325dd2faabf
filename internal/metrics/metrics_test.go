package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	m := New()

	m.RecordRequest(http.MethodGet, "/users/{username}", http.StatusOK, 10*time.Millisecond)
	m.RecordRequest(http.MethodGet, "/users/{username}", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues(http.MethodGet, "/users/{username}", "200")))
}

func TestRecordAuth(t *testing.T) {
	m := New()

	m.RecordAuth(EventLogin, true)
	m.RecordAuth(EventLogin, false)
	m.RecordAuth(EventLogin, false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthEvents.WithLabelValues(EventLogin, OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthEvents.WithLabelValues(EventLogin, OutcomeFailure)))
}

func TestNew_IndependentRegistries(t *testing.T) {
	first := New()
	second := New()

	first.RecordAuth(EventRegister, true)
	assert.Equal(t, 0.0, testutil.ToFloat64(second.AuthEvents.WithLabelValues(EventRegister, OutcomeSuccess)))
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.RecordAuth(EventRegister, true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `auth_events_total{event="register",outcome="success"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
