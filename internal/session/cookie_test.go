package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCookieStore() *CookieStore {
	return NewCookieStore("session", "sign-key", "go-feedback", time.Hour, false)
}

func TestCookieStore_RoundTrip(t *testing.T) {
	s := newTestCookieStore()

	rec := httptest.NewRecorder()
	require.NoError(t, s.SetUsername(rec, httptest.NewRequest(http.MethodPost, "/login", nil), "alice"))

	c := cookieNamed(rec, "session")
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)

	username, ok := s.Username(nextRequest(rec))
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestCookieStore_Anonymous(t *testing.T) {
	_, ok := newTestCookieStore().Username(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestCookieStore_RejectsForeignKey(t *testing.T) {
	forger := NewCookieStore("session", "other-key", "go-feedback", time.Hour, false)

	rec := httptest.NewRecorder()
	require.NoError(t, forger.SetUsername(rec, httptest.NewRequest(http.MethodGet, "/", nil), "alice"))

	_, ok := newTestCookieStore().Username(nextRequest(rec))
	assert.False(t, ok)
}

func TestCookieStore_RejectsGarbage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "alice"})

	_, ok := newTestCookieStore().Username(r)
	assert.False(t, ok)
}

func TestCookieStore_Clear(t *testing.T) {
	s := newTestCookieStore()

	rec := httptest.NewRecorder()
	require.NoError(t, s.Clear(rec, httptest.NewRequest(http.MethodGet, "/logout", nil)))

	c := cookieNamed(rec, "session")
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)
	assert.Empty(t, c.Value)
}

func TestCookieStore_EmptyUsername(t *testing.T) {
	err := newTestCookieStore().SetUsername(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "")
	assert.ErrorIs(t, err, ErrEmptyUsername)
}
