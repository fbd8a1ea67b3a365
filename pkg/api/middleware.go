package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// apiKeyHeader carries the caller's key on every protected request.
const apiKeyHeader = "X-API-Key"

// requireAPIKey gates the protected routes on the configured key. The
// comparison is constant time, so a miss reveals nothing about how much of
// the key matched.
func requireAPIKey(expected string) func(http.Handler) http.Handler {
	want := []byte(expected)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(apiKeyHeader)
			switch {
			case got == "":
				sendError(w, "missing "+apiKeyHeader+" header", http.StatusUnauthorized)
			case subtle.ConstantTimeCompare([]byte(got), want) != 1:
				sendError(w, "invalid API key", http.StatusUnauthorized)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// writeJSON emits one response envelope. Every handler reply, success or
// failure, funnels through here so the wire shape stays uniform.
func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// sendSuccess replies 200 with data in the envelope.
func sendSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// sendError replies with a failed envelope carrying the message.
func sendError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, APIResponse{Success: false, Error: message})
}
