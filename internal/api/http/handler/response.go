package handler

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes data as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeDetails writes the {"details": msg} body used for errors and acknowledgements.
func writeDetails(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, detailsResponse{Details: msg})
}

// noContent writes 204 with no body.
func noContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

type detailsResponse struct {
	Details string `json:"details"`
}
