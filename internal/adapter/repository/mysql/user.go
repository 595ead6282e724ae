package mysql

import (
	"context"

	"greentracker-backend/internal/domain/page"
	userDomain "greentracker-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error, userDomain.ErrNotFound, userDomain.ErrAlreadyExists)
}

func (r *UserRepository) FindOne(ctx context.Context, id string) (*userDomain.User, error) {
	var out userDomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, userDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *UserRepository) Replace(ctx context.Context, id string, u *userDomain.User) error {
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).Where("id = ?", id).Updates(map[string]any{
		"password_hash": u.PasswordHash,
		"role":          u.Role,
	})
	return affected(res, userDomain.ErrNotFound, userDomain.ErrAlreadyExists)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userDomain.User{})
	return affected(res, userDomain.ErrNotFound, nil)
}

type AdminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository { return &AdminRepository{db: db} }

func (r *AdminRepository) Create(ctx context.Context, a *userDomain.Admin) error {
	return translate(r.db.WithContext(ctx).Create(a).Error, userDomain.ErrNotFound, userDomain.ErrAlreadyExists)
}

func (r *AdminRepository) FindOne(ctx context.Context, id string) (*userDomain.Admin, error) {
	var out userDomain.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, userDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *AdminRepository) FindPage(ctx context.Context, p page.Pagination) (page.Page[userDomain.Admin], error) {
	return findPage[userDomain.Admin](r.db.WithContext(ctx), p, "name, id")
}

func (r *AdminRepository) FindAll(ctx context.Context) ([]userDomain.Admin, error) {
	var out []userDomain.Admin
	err := r.db.WithContext(ctx).Order("name, id").Find(&out).Error
	return out, err
}

func (r *AdminRepository) Replace(ctx context.Context, id string, a *userDomain.Admin) error {
	res := r.db.WithContext(ctx).Model(&userDomain.Admin{}).Where("id = ?", id).Updates(map[string]any{
		"name":  a.Name,
		"email": a.Email,
	})
	return affected(res, userDomain.ErrNotFound, nil)
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userDomain.Admin{})
	return affected(res, userDomain.ErrNotFound, nil)
}

type UnitRepository struct{ db *gorm.DB }

func NewUnitRepository(db *gorm.DB) *UnitRepository { return &UnitRepository{db: db} }

func (r *UnitRepository) Create(ctx context.Context, u *userDomain.Unit) error {
	return translate(r.db.WithContext(ctx).Create(u).Error, userDomain.ErrNotFound, userDomain.ErrAlreadyExists)
}

func (r *UnitRepository) FindOne(ctx context.Context, id string) (*userDomain.Unit, error) {
	var out userDomain.Unit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, userDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *UnitRepository) FindPage(ctx context.Context, p page.Pagination) (page.Page[userDomain.Unit], error) {
	return findPage[userDomain.Unit](r.db.WithContext(ctx), p, "name, id")
}

func (r *UnitRepository) FindAll(ctx context.Context) ([]userDomain.Unit, error) {
	var out []userDomain.Unit
	err := r.db.WithContext(ctx).Order("name, id").Find(&out).Error
	return out, err
}

func (r *UnitRepository) Replace(ctx context.Context, id string, u *userDomain.Unit) error {
	res := r.db.WithContext(ctx).Model(&userDomain.Unit{}).Where("id = ?", id).Updates(map[string]any{
		"name":  u.Name,
		"email": u.Email,
	})
	return affected(res, userDomain.ErrNotFound, nil)
}

func (r *UnitRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userDomain.Unit{})
	return affected(res, userDomain.ErrNotFound, nil)
}
