package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response shape: {"success": bool, "message": ...}
// plus one resource-specific key on success ("event", "bookings", ...).
type Envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// WriteSuccess sends a success envelope. fields carries the resource keys
// merged into the envelope alongside success and message.
func WriteSuccess(w http.ResponseWriter, status int, message string, fields Envelope) {
	env := Envelope{"success": true}
	if message != "" {
		env["message"] = message
	}
	for k, v := range fields {
		env[k] = v
	}
	writeJSON(w, status, env)
}

// WriteError sends a failure envelope. detail is omitted when empty so
// production responses stay generic.
func WriteError(w http.ResponseWriter, status int, message, detail string) {
	env := Envelope{
		"success": false,
		"message": message,
	}
	if detail != "" {
		env["error"] = detail
	}
	writeJSON(w, status, env)
}
