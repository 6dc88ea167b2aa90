package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку на каждый запрос: 5xx - Error, 4xx - Warn, остальное - Info
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)

			switch {
			case m.Code >= http.StatusInternalServerError:
				log.Error("%s %s -> %d (%s, %d bytes)", r.Method, r.URL.RequestURI(), m.Code, m.Duration, m.Written)
			case m.Code >= http.StatusBadRequest:
				log.Warn("%s %s -> %d (%s, %d bytes)", r.Method, r.URL.RequestURI(), m.Code, m.Duration, m.Written)
			default:
				log.Info("%s %s -> %d (%s, %d bytes)", r.Method, r.URL.RequestURI(), m.Code, m.Duration, m.Written)
			}
		})
	}
}
