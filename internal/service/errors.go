package service

import "errors"

var (
	// ErrUnauthorized is returned by the guard when the session identity is
	// absent or is not the owner of the requested resource.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned by Authenticate both for an unknown
	// username and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrVersionIsNotSpecified is returned when neither configuration nor
	// build metadata provide an application version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
