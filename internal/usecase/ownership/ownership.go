// Package ownership resolves an activity for a caller, enforcing that units only reach their own.
package ownership

import (
	"context"
	"errors"

	domainActivity "greentracker-backend/internal/domain/activity"
	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/apperr"
)

var (
	ErrActivityNotFound = apperr.NotFound("activity not found")
	ErrNotOwner         = apperr.Forbidden("activity belongs to another unit")
	ErrUnitsOnly        = apperr.Forbidden("only the owning unit may submit")
)

// ActivityWith loads the activity; units may only read their own, staff read any.
func ActivityWith(ctx context.Context, r uow.Repos, actor domainUser.Actor, id string) (*domainActivity.Activity, error) {
	a, err := r.Activities.FindOne(ctx, id)
	if errors.Is(err, domainActivity.ErrNotFound) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	if actor.Role == domainUser.RoleUnit && a.UnitID != actor.ID {
		return nil, ErrNotOwner
	}
	return a, nil
}

// OwnedActivityWith loads the activity for a write only its owner may perform.
func OwnedActivityWith(ctx context.Context, r uow.Repos, actor domainUser.Actor, id string) (*domainActivity.Activity, error) {
	a, err := ActivityWith(ctx, r, actor, id)
	if err != nil {
		return nil, err
	}
	if a.UnitID != actor.ID {
		return nil, ErrUnitsOnly
	}
	return a, nil
}
