package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// sendError sends a JSON error response
func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Detail: message}); err != nil {
		// In rare cases, fall back to plain text
		http.Error(w, fmt.Sprintf(`{"detail": "%v"}`, err), http.StatusInternalServerError)
	}
}
