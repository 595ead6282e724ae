package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var errTooManyAttempts = echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, retry later")

// LoginRateLimit allows perMinute login attempts per client IP after an initial burst.
func LoginRateLimit(perMinute, burst int, log logrus.FieldLogger) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(time.Minute / time.Duration(perMinute)),
		Burst:     burst,
		ExpiresIn: 10 * time.Minute,
	})
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "client not identified")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			log.WithField("ip", identifier).Warn("login rate limit exceeded")
			return errTooManyAttempts
		},
	})
}
