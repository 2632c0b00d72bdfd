package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Response is the envelope every API endpoint returns. The status code is
// mirrored in the body so browser clients don't have to inspect transport
// state.
type Response struct {
	Data       any    `json:"data"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteEnvelope writes data wrapped in the standard envelope.
func WriteEnvelope(w http.ResponseWriter, code int, data any, message string) {
	if message == "" {
		message = "Success"
	}
	WriteJSON(w, code, Response{Data: data, Message: message, StatusCode: code})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for responses carrying tokens or passwords.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// ParseSpaceDelimitedFields splits a space-delimited string into fields,
// e.g. the scope form field at login. Returns nil for blank input.
func ParseSpaceDelimitedFields(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
