package dto

import "github.com/yigit/academy/internal/pkg/apperrors"

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   string                 `json:"error" example:"Student not found"`
	Details []apperrors.FieldError `json:"details,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// WithDetails attaches per-field validation failures.
func (e ErrorResponse) WithDetails(fields []apperrors.FieldError) ErrorResponse {
	e.Details = fields
	return e
}
