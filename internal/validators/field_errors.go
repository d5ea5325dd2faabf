package validators

import "strings"

// FieldError is a single failed rule attached to a form field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is the ordered list of failures of one form submission. It
// implements error, and a nil or empty list means the form is valid.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// Is reports ErrInvalidForm as a match so callers can test for any
// validation failure with errors.Is.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrInvalidForm
}

// Add appends a failure for field.
func (fe *FieldErrors) Add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

// First returns the first message recorded for field, or "".
func (fe FieldErrors) First(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Has reports whether field has any failure.
func (fe FieldErrors) Has(field string) bool {
	return fe.First(field) != ""
}
