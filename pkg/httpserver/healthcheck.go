package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/ruFelix/hesper/pkg/logger"
)

// Check probes one dependency.
type Check func(context.Context) error

// HealthCheckHandler reports the state of the named dependency checks as JSON.
// It responds 200 with status "ok" when every check passes, or 503 with status
// "unavailable" and the failing checks marked "down". No checks is a liveness probe.
func HealthCheckHandler(log *slog.Logger, checks map[string]Check) http.HandlerFunc {
	log = logger.OrDiscard(log)

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK
		results := make(map[string]string, len(checks))

		for _, name := range names {
			if err := checks[name](r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", slog.String("check", name), logger.Error(err))
				results[name] = "down"
				status, code = "unavailable", http.StatusServiceUnavailable
				continue
			}
			results[name] = "up"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": status, "checks": results})
	}
}
