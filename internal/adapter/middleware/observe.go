package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestRecorder is satisfied by metrics.Metrics.
type RequestRecorder interface {
	RequestStarted() func(method, route string, status int)
}

// Metrics records count, latency and in-flight gauge per route template.
func Metrics(m RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			done := m.RequestStarted()
			if err := next(c); err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			done(c.Request().Method, route, c.Response().Status)
			return nil
		}
	}
}

// RequestLog writes one structured line per request once the response is committed.
func RequestLog(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			req, res := c.Request(), c.Response()
			entry := log.WithFields(logrus.Fields{
				"method":     req.Method,
				"uri":        req.RequestURI,
				"route":      c.Path(),
				"status":     res.Status,
				"bytes_out":  res.Size,
				"latency_ms": time.Since(start).Milliseconds(),
				"remote_ip":  c.RealIP(),
				"request_id": res.Header().Get(echo.HeaderXRequestID),
			})
			if actor, ok := ActorFrom(c); ok {
				entry = entry.WithField("actor", actor.ID)
			}
			switch {
			case res.Status >= 500:
				entry.Error("request")
			case res.Status >= 400:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
			return nil
		}
	}
}
