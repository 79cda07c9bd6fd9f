package models

// ErrorResponse is the body of not-found and server errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body of rejected create requests
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// Error messages returned by the API
const (
	MsgRestaurantNotFound       = "Restaurant not found"
	MsgRestaurantDeleteFailed   = "Failed to delete restaurant"
	MsgRestaurantFetchFailed    = "Failed to retrieve restaurant"
	MsgRestaurantsFetchFailed   = "Failed to retrieve restaurants"
	MsgPizzasFetchFailed        = "Failed to retrieve pizzas"
	MsgMissingRequiredFields    = "Missing required fields"
	MsgValidationErrors         = "validation errors"
	MsgPizzaOrRestaurantMissing = "Pizza or Restaurant not found"
)

// NewErrorResponse creates a new error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a new validation error body
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: messages}
}
