package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/apperr"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type tokenTable map[string]domainUser.Actor

func (t tokenTable) Authenticate(_ context.Context, token string) (*domainUser.Actor, error) {
	a, ok := t[token]
	if !ok {
		return nil, apperr.Unauthenticated("invalid token")
	}
	return &a, nil
}

func serveGuarded(t *testing.T, authz string, roles ...domainUser.Role) (*httptest.ResponseRecorder, error) {
	t.Helper()
	tokens := tokenTable{
		"tok-unit":  {ID: "unit-1", Role: domainUser.RoleUnit},
		"tok-admin": {ID: "admin-1", Role: domainUser.RoleAdmin},
	}
	e := echo.New()
	var gotErr error
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		gotErr = err
		_ = c.NoContent(http.StatusTeapot)
	}
	e.GET("/x", func(c echo.Context) error {
		a, _ := ActorFrom(c)
		return c.String(http.StatusOK, a.ID)
	}, Auth(tokens), Allow(roles...))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, gotErr
}

func TestAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		_, err := serveGuarded(t, "", RoleAny)
		require.ErrorIs(t, err, errMissingToken)
	})
	t.Run("wrong scheme", func(t *testing.T) {
		_, err := serveGuarded(t, "Basic tok-unit", RoleAny)
		require.ErrorIs(t, err, errMissingToken)
	})
	t.Run("unknown token", func(t *testing.T) {
		_, err := serveGuarded(t, "Bearer nope", RoleAny)
		require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	})
	t.Run("actor stored", func(t *testing.T) {
		rec, err := serveGuarded(t, "bearer tok-unit", RoleAny)
		require.NoError(t, err)
		require.Equal(t, "unit-1", rec.Body.String())
	})
}

func TestAllow(t *testing.T) {
	rec, err := serveGuarded(t, "Bearer tok-admin", domainUser.RoleAdmin, domainUser.RoleSuperadmin)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	_, err = serveGuarded(t, "Bearer tok-unit", domainUser.RoleAdmin, domainUser.RoleSuperadmin)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	require.Equal(t, "requires role: admin or superadmin", err.Error())
}

func TestAllow_WithoutAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := Allow(RoleAny)(func(echo.Context) error { return nil })(c)
	require.ErrorIs(t, err, errNoActor)
}
