package handlers

import (
	"encoding/json"
	"net/http"
)

// Envelope is the success response shape shared by the data endpoints.
type Envelope struct {
	Success bool          `json:"success"`
	Data    interface{}   `json:"data"`
	Meta    *EnvelopeMeta `json:"meta,omitempty"`
}

// EnvelopeMeta describes how a response payload was produced.
type EnvelopeMeta struct {
	Cached      bool   `json:"cached"`
	GeneratedAt string `json:"generatedAt"`
}

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	return false
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a 200 success envelope.
func WriteSuccess(w http.ResponseWriter, data interface{}, meta *EnvelopeMeta) error {
	return WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Meta: meta})
}

// WriteError writes an error body of the form {"detail": message}.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"detail": message,
	})
}
