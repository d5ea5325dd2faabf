package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-feedback/internal/service"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrMalformedForm:     http.StatusBadRequest,
	ErrInvalidFeedbackID: http.StatusNotFound,
	ErrPageNotFound:      http.StatusNotFound,

	validators.ErrInvalidForm:        http.StatusUnprocessableEntity,
	service.ErrUnauthorized:          http.StatusUnauthorized,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrFeedbackNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
