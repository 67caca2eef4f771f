package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequestLogger пишет в лог строку на каждый запрос.
// 5xx уходят в Error, 4xx в Warn.
func RequestLogger(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("HTTP %s %s - status=%d, bytes=%d, duration=%s",
					r.Method, r.URL.Path, rec.status, rec.size, elapsed)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("HTTP %s %s - status=%d, bytes=%d, duration=%s",
					r.Method, r.URL.Path, rec.status, rec.size, elapsed)
			default:
				logger.Info("HTTP %s %s - status=%d, bytes=%d, duration=%s",
					r.Method, r.URL.Path, rec.status, rec.size, elapsed)
			}
		})
	}
}
