package models

// APIError represents a standardized error response format for the API.
// @Description APIError carries an application-specific error code, a human-readable message, and optional details.
type APIError struct {
	Code    string      `json:"code"`              // Application-specific error code (e.g., "ATTRIBUTE_NOT_FOUND")
	Message string      `json:"message"`           // Human-readable message describing the error
	Details interface{} `json:"details,omitempty"` // Optional field for additional error details
}

// Predefined application-specific error codes
const (
	// Generic Errors
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeServiceUnavailable  = "SERVICE_UNAVAILABLE" // The attribute document failed to load

	// Input Validation
	ErrorCodeValidation = "VALIDATION_ERROR"

	// Resource Specific Errors
	ErrorCodeNotFound          = "NOT_FOUND"
	ErrorCodeAttributeNotFound = "ATTRIBUTE_NOT_FOUND"
)
