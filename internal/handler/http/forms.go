package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-feedback/models"
)

// maxFormBytes bounds every form body; the largest legitimate form is a few KiB.
const maxFormBytes = 64 << 10

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedForm, err)
	}
	return nil
}

func decodeRegisterForm(w http.ResponseWriter, r *http.Request) (models.RegisterForm, error) {
	if err := parseForm(w, r); err != nil {
		return models.RegisterForm{}, err
	}

	return models.RegisterForm{
		Username:  strings.TrimSpace(r.PostFormValue("username")),
		Password:  r.PostFormValue("password"),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
	}, nil
}

func decodeLoginForm(w http.ResponseWriter, r *http.Request) (models.LoginForm, error) {
	if err := parseForm(w, r); err != nil {
		return models.LoginForm{}, err
	}

	return models.LoginForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}, nil
}

func decodeFeedbackForm(w http.ResponseWriter, r *http.Request) (models.FeedbackForm, error) {
	if err := parseForm(w, r); err != nil {
		return models.FeedbackForm{}, err
	}

	return models.FeedbackForm{
		Title:   strings.TrimSpace(r.PostFormValue("title")),
		Content: r.PostFormValue("content"),
	}, nil
}

func feedbackIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidFeedbackID
	}
	return id, nil
}

// usernameParam returns the decoded {username} segment. chi matches on the
// raw path, so an escaped "/" arrives as %2F.
func usernameParam(r *http.Request) string {
	raw := chi.URLParam(r, "username")
	username, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return username
}
