package gateway

import (
	"Social_Network/metrics"
	"Social_Network/socialnetapis/followgraphapi"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"net/http"
	"strconv"
	"time"
)

const requestIDHeader = "X-Request-ID"

// instrument tags each request with an ID, logs it and records metrics
// labelled with the matched route template.
func (svc *Service) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set(requestIDHeader, reqID.String())
		r = r.WithContext(followgraphapi.WithRequestID(r.Context(), reqID))

		start := time.Now()
		wrapped := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		elapsed := time.Since(start)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()

		RequestLogger(r, svc.cfg.Logger).WithFields(logrus.Fields{
			"method":   r.Method,
			"route":    route,
			"status":   wrapped.statusCode,
			"duration": elapsed.String(),
		}).Debug("handled HTTP request")
	})
}

// RequestLogger annotates logger with the ID assigned to r.
func RequestLogger(r *http.Request, logger *logrus.Entry) *logrus.Entry {
	return followgraphapi.RequestLogger(r.Context(), logger)
}

// responseWrapper captures the status code written by a handler.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
