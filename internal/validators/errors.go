package validators

import "errors"

var (
	// ErrUnsupportedType is returned when the value handed to a validator is
	// not a struct or a pointer to one.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidForm matches every [FieldErrors] value via errors.Is.
	ErrInvalidForm = errors.New("form is invalid")
)
