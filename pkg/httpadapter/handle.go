package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
)

type HttpHandle struct {
	Path    string
	Handler func(w http.ResponseWriter, r *http.Request)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlogger.GetLogger(r.Context()).Error("failed to encode response", "error", err)
	}
}

// Error writes {"error": msg}. 5xx responses are logged with the cause.
func Error(w http.ResponseWriter, r *http.Request, status int, msg string, cause error) {
	if status >= http.StatusInternalServerError {
		ctxlogger.GetLogger(r.Context()).Error(msg, "status", status, "error", cause)
	}
	JSON(w, r, status, ErrorResponse{Error: msg})
}

// ErrorWithDetails writes {"error": msg, "details": details}.
func ErrorWithDetails(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	JSON(w, r, status, ErrorResponse{Error: msg, Details: details})
}

// Decode reads a JSON body into v, rejecting bodies larger than 1MB.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	return json.NewDecoder(r.Body).Decode(v)
}
