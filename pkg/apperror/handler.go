package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Write renders err as {"error":{"code","message"}} with the matching status.
// 5xx errors are logged at error level.
func Write(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, body := ToHTTPError(err)

	if status >= http.StatusInternalServerError && log != nil {
		log.Error("request error",
			slog.Int("status", status),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(status)
		return
	}
	WriteJSON(w, status, body)
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
