package utils

import (
	"encoding/json"
	"net/http"
)

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithError writes the uniform failure envelope used by every route.
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]any{"success": false, "message": msg})
}

// RespondWithErrorDetail additionally surfaces the raw error for 500s.
func RespondWithErrorDetail(w http.ResponseWriter, code int, msg string, err error) {
	payload := map[string]any{"success": false, "message": msg}
	if err != nil {
		payload["error"] = err.Error()
	}
	RespondWithJSON(w, code, payload)
}

func SendResponse(w http.ResponseWriter, status int, data any, message string, err error) {
	resp := map[string]any{
		"status":  status,
		"message": message,
		"data":    data,
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	RespondWithJSON(w, status, resp)
}
