package application

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied = errors.New("permission denied: you are not the owner of this resource")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrImageNotFound    = errors.New("image not found")
)

// ValidationError reports a field that failed a content rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
