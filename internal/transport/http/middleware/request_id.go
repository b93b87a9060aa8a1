package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/btg-configurator/platform/logger"
)

// LogRequestID puts the chi request id into the logger fields of the request
// context. It must run after chimw.RequestID.
func LogRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			r = r.WithContext(logger.ContextWithFields(r.Context(), logger.String("request_id", id)))
		}
		next.ServeHTTP(w, r)
	})
}
