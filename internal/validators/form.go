// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormValidator checks `validate` struct tags and names failing fields after
// their `form` tag.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator constructs a FormValidator. The returned value is safe for
// concurrent use.
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// bcrypt reads at most 72 bytes of a password, while max counts runes
	_ = v.RegisterValidation("maxbytes", maxBytes)

	return &FormValidator{validate: v}
}

var defaultValidator = NewFormValidator()

// ValidateForm validates form with the package-level FormValidator. It
// returns nil when every rule holds.
func ValidateForm(ctx context.Context, form any) FieldErrors {
	err := defaultValidator.Validate(ctx, form)
	if err == nil {
		return nil
	}

	var fieldErrors FieldErrors
	if errors.As(err, &fieldErrors) {
		return fieldErrors
	}

	// not a struct: surface it against no particular field
	return FieldErrors{{Message: err.Error()}}
}

// Validate implements [Validator]. When fields are given only those struct
// fields (by Go name) are checked. Rule failures come back as [FieldErrors].
func (v *FormValidator) Validate(ctx context.Context, form any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, form, fields...)
	} else {
		err = v.validate.StructCtx(ctx, form)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalid.Error())
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := make(FieldErrors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), message(fe))
	}

	return fieldErrors
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("Field cannot be longer than %s bytes.", fe.Param())
	case "email":
		return "Invalid email address."
	default:
		return "Invalid value."
	}
}
