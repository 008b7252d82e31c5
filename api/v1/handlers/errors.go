package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// SendError sends a standardized JSON error response
func SendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Detail: message})
}

// SendData sends a successful response with data
func SendData(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	SendError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	SendError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
