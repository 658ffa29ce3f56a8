package apperrors

import (
	"errors"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed   = errors.New("validation failed")
	ErrBadRequest         = errors.New("bad request")
	ErrInvalidID          = errors.New("invalid id")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Entity errors. Each unwraps to ErrResourceNotFound so callers can match
// either the specific or the generic sentinel.
var (
	ErrCourseNotFound          = NewResourceNotFoundError("Course not found")
	ErrStudentNotFound         = NewResourceNotFoundError("Student not found")
	ErrTeacherNotFound         = NewResourceNotFoundError("Teacher not found")
	ErrLessonNotFound          = NewResourceNotFoundError("Lesson not found")
	ErrFeedbackNotFound        = NewResourceNotFoundError("Feedback not found")
	ErrStudentOrCourseNotFound = NewResourceNotFoundError("Student or course not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError builds a validation failure carrying every offending field.
func NewValidationError(fields []FieldError) error {
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: ErrValidationFailed.Error() + ": " + strings.Join(msgs, ", "),
		Fields:  fields,
	}
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Fields  []FieldError
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// FieldErrors returns the field list attached to err, if any.
func FieldErrors(err error) []FieldError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Fields
	}
	return nil
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
