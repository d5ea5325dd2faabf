package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-feedback/internal/app"
	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/service"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/models"
)

// handleGuardError turns a failed ownership check into a redirect to the
// login page. Every other error gets the error page.
func (h *Handler) handleGuardError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUnauthorized) {
		h.redirectWithNotice(w, r, "/login", models.NoticeDanger, app.NoticeLoginFirst)
		return
	}
	h.renderError(w, r, err)
}

func (h *Handler) showUser(w http.ResponseWriter, r *http.Request) {
	username := usernameParam(r)

	page, err := h.services.UserService.GetProfile(r.Context(), identityFromRequest(r), username)
	if err != nil {
		h.handleGuardError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pageUser, pageData{
		Title:    page.User.Username,
		User:     page.User,
		Feedback: page.Feedback,
	})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	username := usernameParam(r)

	err := h.services.UserService.DeleteUser(r.Context(), identityFromRequest(r), username)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrUserNotFound):
		h.redirectWithNotice(w, r, "/", models.NoticeDanger, app.NoticeUserNotFound)
		return
	default:
		h.handleGuardError(w, r, err)
		return
	}

	if err = h.sessions.Store.Clear(w, r); err != nil {
		log.Err(err).Msg("error clearing session of deleted user")
	}

	h.redirectWithNotice(w, r, "/", models.NoticeInfo, app.NoticeUserDeleted)
}
