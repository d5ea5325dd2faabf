package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-feedback/internal/app"
	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/metrics"
	"github.com/MKhiriev/go-feedback/internal/service"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/internal/validators"
	"github.com/MKhiriev/go-feedback/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/register", http.StatusFound)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, ErrPageNotFound)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageRegister, pageData{Title: "Register", Form: models.RegisterForm{}})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form, err := decodeRegisterForm(w, r)
	if err != nil {
		log.Err(err).Msg("invalid form was passed")
		h.renderError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, form)
	if err != nil {
		h.metrics.RecordAuth(metrics.EventRegister, false)

		form.Password = ""
		data := pageData{Title: "Register", Form: form}

		var fieldErrors validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrors):
			data.Errors = fieldErrors
			h.render(w, r, http.StatusUnprocessableEntity, pageRegister, data)
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Info().Str("username", form.Username).Msg("username already exists")
			data.Errors = validators.FieldErrors{{Field: "username", Message: app.FieldUsernameTaken}}
			h.render(w, r, http.StatusConflict, pageRegister, data)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.renderError(w, r, err)
		}
		return
	}
	h.metrics.RecordAuth(metrics.EventRegister, true)

	if err = h.sessions.Store.SetUsername(w, r, registeredUser.Username); err != nil {
		log.Err(err).Msg("error starting session")
		h.renderError(w, r, err)
		return
	}

	h.redirectWithNotice(w, r, userPath(registeredUser.Username), models.NoticeSuccess,
		fmt.Sprintf(app.NoticeRegistered, registeredUser.FirstName))
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageLogin, pageData{Title: "Login", Form: models.LoginForm{}})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form, err := decodeLoginForm(w, r)
	if err != nil {
		log.Err(err).Msg("invalid form was passed")
		h.renderError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Authenticate(ctx, form)
	if err != nil {
		h.metrics.RecordAuth(metrics.EventLogin, false)

		form.Password = ""
		data := pageData{Title: "Login", Form: form}

		var fieldErrors validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrors):
			data.Errors = fieldErrors
			h.render(w, r, http.StatusUnprocessableEntity, pageLogin, data)
		case errors.Is(err, service.ErrInvalidCredentials):
			data.Errors = validators.FieldErrors{{Field: "username", Message: app.FieldInvalidCredentials}}
			h.render(w, r, http.StatusUnauthorized, pageLogin, data)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.renderError(w, r, err)
		}
		return
	}
	h.metrics.RecordAuth(metrics.EventLogin, true)

	if err = h.sessions.Store.SetUsername(w, r, foundUser.Username); err != nil {
		log.Err(err).Msg("error starting session")
		h.renderError(w, r, err)
		return
	}

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")

	h.redirectWithNotice(w, r, userPath(foundUser.Username), models.NoticeInfo,
		fmt.Sprintf(app.NoticeLoggedIn, foundUser.FirstName))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	identity := identityFromRequest(r)
	if identity == "" {
		h.redirectWithNotice(w, r, "/", models.NoticeWarning, app.NoticeNotLoggedIn)
		return
	}

	if err := h.sessions.Store.Clear(w, r); err != nil {
		logger.FromRequest(r).Err(err).Msg("error clearing session")
		h.renderError(w, r, err)
		return
	}
	h.metrics.RecordAuth(metrics.EventLogout, true)

	h.redirectWithNotice(w, r, "/", models.NoticeInfo, app.NoticeLoggedOut)
}
