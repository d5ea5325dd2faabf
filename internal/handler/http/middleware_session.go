package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/utils"
)

// withSession resolves the session identity once per request and stores it
// in the request context. A missing or invalid session leaves the request
// anonymous; rejecting it is up to the guard.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := h.sessions.Store.Username(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("identity", username)
		})

		ctx := utils.WithUsername(r.Context(), username)
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

func identityFromRequest(r *http.Request) string {
	username, _ := utils.GetUsernameFromContext(r.Context())
	return username
}
