package middleware

import (
	"encoding/json"
	"net/http"
)

func writeDetails(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"details": msg})
}
