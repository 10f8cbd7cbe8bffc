package handler

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the error envelope the client displays verbatim.
type errorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{
		Success:    false,
		StatusCode: status,
		Message:    message,
	})
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
