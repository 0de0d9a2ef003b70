package util

import (
	"errors"
	"net/http"
)

// APIError is an error with the HTTP status it should surface as.
// Anything that is not an APIError is reported as a 500 with a generic
// message so internal detail never reaches the client.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func ValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func NotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

func AuthError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

// StatusOf resolves the HTTP status for err.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// FailedResponse builds the error body for err. Unanticipated errors
// collapse to a generic message.
func FailedResponse(err error) map[string]interface{} {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return map[string]interface{}{"message": apiErr.Message}
	}
	return map[string]interface{}{"message": SOMETHING_WENT_WRONG}
}

// SuccessResponse wraps a plain informational message.
func SuccessResponse(message string) map[string]interface{} {
	return map[string]interface{}{"message": message}
}
