package middleware

import (
	"context"
	"strings"

	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/apperr"

	"github.com/labstack/echo/v4"
)

const actorKey = "greentracker.actor"

// RoleAny accepts every authenticated role.
const RoleAny domainUser.Role = "any"

var (
	errMissingToken = apperr.Unauthenticated("missing bearer token")
	errNoActor      = apperr.Unauthenticated("not authenticated")
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domainUser.Actor, error)
}

// Auth resolves the bearer token to a live user and stores it on the context.
func Auth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(raw, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return errMissingToken
			}
			actor, err := a.Authenticate(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return err
			}
			c.Set(actorKey, *actor)
			return next(c)
		}
	}
}

// Allow admits the authenticated actor only when its role is listed.
func Allow(roles ...domainUser.Role) echo.MiddlewareFunc {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	denied := apperr.Forbiddenf("requires role: %s", strings.Join(names, " or "))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return errNoActor
			}
			for _, r := range roles {
				if r == RoleAny || r == actor.Role {
					return next(c)
				}
			}
			return denied
		}
	}
}

func ActorFrom(c echo.Context) (domainUser.Actor, bool) {
	a, ok := c.Get(actorKey).(domainUser.Actor)
	return a, ok
}

// WithActor stores a resolved actor; handler tests use it to skip the token round trip.
func WithActor(c echo.Context, a domainUser.Actor) { c.Set(actorKey, a) }
