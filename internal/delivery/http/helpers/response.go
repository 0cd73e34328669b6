package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest         = "bad_request"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeNotFound           = "not_found"
	ErrCodeAttendeeNotInEvent = "attendee_not_in_event"
	ErrCodeAlreadyCheckedIn   = "already_checked_in"
	ErrCodeInternalError      = "internal_error"
)

// APIError is the error object in error responses.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the envelope for all error responses. Data optionally
// carries details about the failure, such as the existing check-in time on
// a conflict.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSONErrorWithData(w, statusCode, code, message, nil)
}

// WriteJSONErrorWithData writes an APIResponse with the given error and details.
func WriteJSONErrorWithData(w http.ResponseWriter, statusCode int, code, message string, data any) {
	WriteJSON(w, statusCode, APIResponse{
		Data:  data,
		Error: &APIError{Code: code, Message: message},
	})
}
