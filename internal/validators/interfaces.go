// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Form structs declare their rules in `validate` struct tags; FormValidator
// evaluates them with go-playground/validator and reports failures as an
// ordered FieldErrors list keyed by the `form` tag of each field, ready to be
// rendered next to the offending input.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to the named struct fields.
	Validate(context.Context, any, ...string) error
}
