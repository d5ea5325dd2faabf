package session

import "errors"

var (
	// ErrEmptyUsername is returned when a session is opened for "".
	ErrEmptyUsername = errors.New("session username is empty")

	// ErrUnknownBackend is returned by NewSessions for an unsupported backend.
	ErrUnknownBackend = errors.New("unknown session backend")

	// ErrSavingSession is returned when the backend fails to persist a new
	// session.
	ErrSavingSession = errors.New("error saving session")

	// ErrDeletingSession is returned when the backend fails to drop a
	// session on logout.
	ErrDeletingSession = errors.New("error deleting session")
)
