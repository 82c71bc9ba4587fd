package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body for plain-message responses (401/403/404 and
// success responses that carry only a message).
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ServerErrorResponse is the body for 500 responses. The raw error string is
// exposed in the error field, matching the API's long-standing behavior.
// swagger:model ServerErrorResponse
type ServerErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes payload.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONMessage writes a {"message": ...} body with the given status.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteServerError writes the uniform 500 body: a generic message plus the
// raw error string.
func WriteServerError(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusInternalServerError, ServerErrorResponse{
		Message: "Server error",
		Error:   err.Error(),
	})
}
