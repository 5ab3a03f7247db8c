package utils

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// WriteError writes the client-facing failure body. Every handler funnels
// gateway and validation failures through here so the wire format stays
// {"detail": "..."} across the API.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{
		Detail: message,
	})
}
