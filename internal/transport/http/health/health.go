package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/btg-configurator/platform/logger"
)

// Check reports whether one dependency is reachable.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("SERVING")); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}

// Readiness answers 503 naming the first dependency that fails to respond
// within timeout.
func Readiness(timeout time.Duration, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		for _, c := range checks {
			if err := c.Ping(ctx); err != nil {
				logger.Warn(ctx, "readiness check failed", logger.String("dependency", c.Name), logger.ErrorF(err))
				http.Error(w, "NOT_SERVING: "+c.Name, http.StatusServiceUnavailable)
				return
			}
		}

		HealthCheck(w, r)
	}
}
