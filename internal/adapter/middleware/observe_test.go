package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domainUser "greentracker-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method, route string
	status        int
}

type fakeRecorder struct{ got []recordedRequest }

func (f *fakeRecorder) RequestStarted() func(method, route string, status int) {
	return func(method, route string, status int) {
		f.got = append(f.got, recordedRequest{method, route, status})
	}
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	e := echo.New()
	e.Use(Metrics(rec))
	e.GET("/indicators/:index", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	for _, path := range []string{"/indicators/3", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, []recordedRequest{
		{http.MethodGet, "/indicators/:index", http.StatusOK},
		{http.MethodGet, "/boom", http.StatusInternalServerError},
	}, rec.got)
}

func TestRequestLog_LevelsAndFields(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	e := echo.New()
	e.Use(RequestLog(logger))
	e.GET("/me", func(c echo.Context) error {
		WithActor(c, domainUser.Actor{ID: "unit-1", Role: domainUser.RoleUnit})
		return c.NoContent(http.StatusOK)
	})
	e.GET("/missing", func(c echo.Context) error { return echo.ErrNotFound })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))
	entry := hook.LastEntry()
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "unit-1", entry.Data["actor"])
	require.Equal(t, "/me", entry.Data["route"])

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	require.Equal(t, http.StatusNotFound, hook.LastEntry().Data["status"])
}
