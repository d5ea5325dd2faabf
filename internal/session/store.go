package session

import (
	"net/http"
	"time"
)

// Store reads and writes the session identity of a request.
type Store interface {
	// Username returns the authenticated username, or false for an
	// anonymous, expired or tampered session.
	Username(r *http.Request) (string, bool)
	// SetUsername starts a fresh session for username.
	SetUsername(w http.ResponseWriter, r *http.Request, username string) error
	// Clear ends the session. Clearing an anonymous session is a no-op.
	Clear(w http.ResponseWriter, r *http.Request) error
}

// cookieOptions holds the attributes shared by every cookie this package
// writes.
type cookieOptions struct {
	name   string
	secure bool
}

func (o cookieOptions) set(w http.ResponseWriter, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   o.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (o cookieOptions) expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   o.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (o cookieOptions) read(r *http.Request) (string, bool) {
	c, err := r.Cookie(o.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
