package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hirehub/jobboard/pkg/logger"
)

// HealthCheckHandler serves liveness and readiness probes from one endpoint.
// With no dependency checks it always answers 200 "ALIVE". With checks it
// runs each one and answers 200 "READY" only when all of them pass; the
// first failure is logged and reported as 500 "NOT_READY".
func HealthCheckHandler(ctx context.Context, log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
