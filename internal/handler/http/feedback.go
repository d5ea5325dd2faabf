package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-feedback/internal/app"
	"github.com/MKhiriev/go-feedback/internal/validators"
	"github.com/MKhiriev/go-feedback/models"
)

func addFeedbackAction(username string) string {
	return userPath(username) + "/feedback/add"
}

func updateFeedbackAction(id int64) string {
	return fmt.Sprintf("/feedback/%d/update", id)
}

func (h *Handler) addFeedbackPage(w http.ResponseWriter, r *http.Request) {
	username := usernameParam(r)

	if err := h.services.GuardService.AuthorizeUser(r.Context(), identityFromRequest(r), username); err != nil {
		h.handleGuardError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pageFeedbackForm, pageData{
		Title:  "Add Feedback",
		Action: addFeedbackAction(username),
		Form:   models.FeedbackForm{},
	})
}

func (h *Handler) addFeedback(w http.ResponseWriter, r *http.Request) {
	username := usernameParam(r)

	form, err := decodeFeedbackForm(w, r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_, err = h.services.FeedbackService.Add(r.Context(), identityFromRequest(r), username, form)
	if err != nil {
		var fieldErrors validators.FieldErrors
		if errors.As(err, &fieldErrors) {
			h.render(w, r, http.StatusUnprocessableEntity, pageFeedbackForm, pageData{
				Title:  "Add Feedback",
				Action: addFeedbackAction(username),
				Form:   form,
				Errors: fieldErrors,
			})
			return
		}
		h.handleGuardError(w, r, err)
		return
	}

	h.redirectWithNotice(w, r, userPath(username), models.NoticeSuccess, app.NoticeFeedbackSaved)
}

func (h *Handler) updateFeedbackPage(w http.ResponseWriter, r *http.Request) {
	id, err := feedbackIDParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	note, err := h.services.FeedbackService.Get(r.Context(), identityFromRequest(r), id)
	if err != nil {
		h.handleGuardError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pageFeedbackForm, pageData{
		Title:  "Update Feedback",
		Action: updateFeedbackAction(id),
		Form:   models.FeedbackForm{Title: note.Title, Content: note.Content},
	})
}

func (h *Handler) updateFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := feedbackIDParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	form, err := decodeFeedbackForm(w, r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	note, err := h.services.FeedbackService.Update(r.Context(), identityFromRequest(r), id, form)
	if err != nil {
		var fieldErrors validators.FieldErrors
		if errors.As(err, &fieldErrors) {
			h.render(w, r, http.StatusUnprocessableEntity, pageFeedbackForm, pageData{
				Title:  "Update Feedback",
				Action: updateFeedbackAction(id),
				Form:   form,
				Errors: fieldErrors,
			})
			return
		}
		h.handleGuardError(w, r, err)
		return
	}

	h.redirectWithNotice(w, r, userPath(note.Username), models.NoticeSuccess, app.NoticeFeedbackUpdated)
}

func (h *Handler) deleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := feedbackIDParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	note, err := h.services.FeedbackService.Delete(r.Context(), identityFromRequest(r), id)
	if err != nil {
		h.handleGuardError(w, r, err)
		return
	}

	h.redirectWithNotice(w, r, userPath(note.Username), models.NoticeInfo, app.NoticeFeedbackDeleted)
}
