// internal/web/health.go
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleHealthz reports gateway liveness and backend reachability.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "ok",
		"backend": "ok",
	}
	code := http.StatusOK

	if err := s.items.Health(r.Context()); err != nil {
		s.logger.WarnContext(r.Context(), "backend health check failed",
			slog.String("error", err.Error()))
		status["status"] = "degraded"
		status["backend"] = "unreachable"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		s.logger.Error("failed to encode health response",
			slog.String("error", err.Error()))
	}
}
