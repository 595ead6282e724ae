package admin

import (
	"context"
	"errors"
	"fmt"

	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/auth"
	"greentracker-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create adds a reviewer with the admin role.
func (u *Usecase) Create(ctx context.Context, in Input) (*DTO, error) {
	if in.Password == "" {
		return nil, ErrPasswordRequired
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	var dto *DTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr := &domainUser.User{ID: id.New(), PasswordHash: hash, Role: domainUser.RoleAdmin}
		if err := r.Users.Create(ctx, usr); err != nil {
			return translate(err)
		}
		a := &domainUser.Admin{ID: usr.ID, Name: in.Name, Email: in.Email}
		if err := r.Admins.Create(ctx, a); err != nil {
			return translate(err)
		}
		out := toDTO(*a, usr.Role)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, adminID string) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		out, err := AssembleWith(ctx, r, adminID)
		dto = out
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context, p page.Pagination) (page.Page[DTO], error) {
	var out page.Page[DTO]
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		pg, err := r.Admins.FindPage(ctx, p)
		if err != nil {
			return err
		}
		items := make([]DTO, 0, len(pg.Items))
		for _, a := range pg.Items {
			usr, err := r.Users.FindOne(ctx, a.ID)
			if err != nil {
				return fmt.Errorf("user of admin %s: %w", a.ID, err)
			}
			items = append(items, toDTO(a, usr.Role))
		}
		out = page.Page[DTO]{
			Items:        items,
			PageIndex:    pg.PageIndex,
			ItemsPerPage: pg.ItemsPerPage,
			PageCount:    pg.PageCount,
			ItemCount:    pg.ItemCount,
		}
		return nil
	})
	return out, err
}

// Replace rewrites the profile; an empty password keeps the current one. The role never changes.
func (u *Usecase) Replace(ctx context.Context, adminID string, in Input) (*DTO, error) {
	hash, err := hashOptional(in.Password)
	if err != nil {
		return nil, err
	}
	var dto *DTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		out, err := replaceWith(ctx, r, adminID, in, hash)
		dto = out
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, adminID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.FindOne(ctx, adminID)
		if err != nil {
			return translate(err)
		}
		if !usr.Role.IsStaff() {
			return ErrNotFound
		}
		if usr.Role == domainUser.RoleSuperadmin {
			return ErrProtected
		}
		if err := r.Admins.Delete(ctx, adminID); err != nil {
			return translate(err)
		}
		return translate(r.Users.Delete(ctx, adminID))
	})
}

func (u *Usecase) Me(ctx context.Context, actor domainUser.Actor) (*DTO, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrStaffOnly
	}
	return u.Get(ctx, actor.ID)
}

func (u *Usecase) ReplaceMe(ctx context.Context, actor domainUser.Actor, in Input) (*DTO, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrStaffOnly
	}
	return u.Replace(ctx, actor.ID, in)
}

// EnsureSuperadmin creates the seeded superadmin or brings an existing row back in line with seed.
func (u *Usecase) EnsureSuperadmin(ctx context.Context, seed Seed) error {
	hash, err := auth.HashPassword(seed.Password)
	if err != nil {
		return err
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr := &domainUser.User{ID: seed.ID, PasswordHash: hash, Role: domainUser.RoleSuperadmin}
		a := &domainUser.Admin{ID: seed.ID, Name: seed.Name, Email: seed.Email}

		cur, err := r.Users.FindOne(ctx, seed.ID)
		switch {
		case errors.Is(err, domainUser.ErrNotFound):
			if err := r.Users.Create(ctx, usr); err != nil {
				return err
			}
			return r.Admins.Create(ctx, a)
		case err != nil:
			return err
		case cur.Role == domainUser.RoleUnit:
			return fmt.Errorf("seeded id %s belongs to a unit", seed.ID)
		}
		if err := r.Users.Replace(ctx, seed.ID, usr); err != nil {
			return err
		}
		if _, err := r.Admins.FindOne(ctx, seed.ID); errors.Is(err, domainUser.ErrNotFound) {
			return r.Admins.Create(ctx, a)
		} else if err != nil {
			return err
		}
		return r.Admins.Replace(ctx, seed.ID, a)
	})
	if err != nil {
		return fmt.Errorf("ensure superadmin: %w", err)
	}
	return nil
}

func AssembleWith(ctx context.Context, r uow.Repos, adminID string) (*DTO, error) {
	usr, err := r.Users.FindOne(ctx, adminID)
	if err != nil {
		return nil, translate(err)
	}
	if !usr.Role.IsStaff() {
		return nil, ErrNotFound
	}
	a, err := r.Admins.FindOne(ctx, adminID)
	if err != nil {
		return nil, translate(err)
	}
	out := toDTO(*a, usr.Role)
	return &out, nil
}

func replaceWith(ctx context.Context, r uow.Repos, adminID string, in Input, hash string) (*DTO, error) {
	usr, err := r.Users.FindOne(ctx, adminID)
	if err != nil {
		return nil, translate(err)
	}
	if !usr.Role.IsStaff() {
		return nil, ErrNotFound
	}
	a := &domainUser.Admin{ID: adminID, Name: in.Name, Email: in.Email}
	if err := r.Admins.Replace(ctx, adminID, a); err != nil {
		return nil, translate(err)
	}
	if hash != "" {
		usr.PasswordHash = hash
		if err := r.Users.Replace(ctx, adminID, usr); err != nil {
			return nil, translate(err)
		}
	}
	out := toDTO(*a, usr.Role)
	return &out, nil
}

func hashOptional(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	return auth.HashPassword(password)
}

func translate(err error) error {
	switch {
	case errors.Is(err, domainUser.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, domainUser.ErrAlreadyExists):
		return ErrAlreadyExists
	}
	return err
}
