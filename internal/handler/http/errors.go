// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while decoding a request before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrMalformedForm is returned when the request body cannot be parsed
	// as an URL-encoded form.
	ErrMalformedForm = errors.New("malformed form body")

	// ErrInvalidFeedbackID is returned when the {id} path segment is not a
	// positive integer. It is answered like a missing feedback.
	ErrInvalidFeedbackID = errors.New("invalid feedback id")

	// ErrPageNotFound is answered for paths no route matches.
	ErrPageNotFound = errors.New("page not found")
)
