package handler

import (
	"encoding/json"
	"net/http"
)

// Every handler in this package responds through these two helpers so the
// error envelope stays {"error": msg} across the whole surface.

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
