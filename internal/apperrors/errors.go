package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for translation at the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindBadRequest
)

// FieldViolation is a single failed constraint on an input field.
type FieldViolation struct {
	Field   string
	Message string
}

// Error is the typed error returned by services and handlers.
type Error struct {
	Kind       Kind
	Message    string
	Violations []FieldViolation
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FieldMessages collapses violations into one message per field.
// When a field has several violations the first one wins.
func (e *Error) FieldMessages() map[string]string {
	messages := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		if _, exists := messages[v.Field]; !exists {
			messages[v.Field] = v.Message
		}
	}
	return messages
}

// NotFound reports a missing resource.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation reports one or more failed input constraints.
func Validation(violations []FieldViolation) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Violations: violations}
}

// BadRequest reports transport input that could not be decoded at all.
func BadRequest(message string, err error) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Err: err}
}

// Internal wraps an unclassified failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf returns the kind of err, or KindInternal if err carries no *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
