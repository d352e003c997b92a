package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body for the API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error description
	// default: Internal server error
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
