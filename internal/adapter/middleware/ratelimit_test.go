package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLoginRateLimit(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, LoginRateLimit(1, 2, logger))

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, hit("10.0.0.1"))
	require.Equal(t, http.StatusOK, hit("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))
	require.Equal(t, http.StatusOK, hit("10.0.0.2"))
	require.Equal(t, "login rate limit exceeded", hook.LastEntry().Message)
}
