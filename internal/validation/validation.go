package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Error is a validation error carrying field-specific messages.
type Error struct {
	Fields map[string]string
}

// Error implements the error interface, joining field messages in a stable order.
func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// IsValidationError reports whether err is a field validation error.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &Error{Fields: map[string]string{"id": fmt.Sprintf("invalid UUID format: %s", id)}}
	}
	return nil
}
