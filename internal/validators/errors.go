package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrValidation is the sentinel every *ValidationError unwraps to.
	ErrValidation      = errors.New("validation failed")
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// NonFieldErrors is the key used for errors that are not bound to a single field.
const NonFieldErrors = "non_field_errors"

// ValidationError carries human-readable messages grouped by field name.
// Field names follow the JSON wire names, nested fields are dotted
// (e.g. "tags[0].name").
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns a ValidationError with a single message.
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}

// Add appends message to the list of messages of field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Merge copies all messages of other into e.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for field, messages := range other.Fields {
		for _, m := range messages {
			e.Add(field, m)
		}
	}
}

// Empty reports whether no message was recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// OrNil returns e when it carries messages and nil otherwise, so callers can
// collect messages and return the result directly.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := slices.Sorted(maps.Keys(e.Fields))

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], " "))
	}

	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
