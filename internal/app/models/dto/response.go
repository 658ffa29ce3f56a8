package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Course deleted successfully"`
}

// NewSuccessResponse creates a success message body.
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Message: message}
}
