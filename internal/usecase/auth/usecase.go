package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Usecase struct {
	uow    uow.UnitOfWork
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, secret string, expiry time.Duration) *Usecase {
	return &Usecase{uow: tx, secret: []byte(secret), expiry: expiry, now: time.Now}
}

// WithClock replaces the time source; tests only.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Login checks the password of user id and issues a signed token.
// An unknown id and a wrong password are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginDTO, error) {
	var profile *UserDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.FindOne(ctx, in.ID)
		if errors.Is(err, domainUser.ErrNotFound) {
			return ErrInvalidCredentials
		}
		if err != nil {
			return err
		}
		if !CheckPassword(usr.PasswordHash, in.Password) {
			return ErrInvalidCredentials
		}
		profile, err = ProfileWith(ctx, r, *usr)
		return err
	})
	if err != nil {
		return nil, err
	}
	token, err := u.sign(profile.ID)
	if err != nil {
		return nil, err
	}
	return &LoginDTO{Token: token, User: *profile}, nil
}

// Authenticate verifies the token and resolves it to a live user.
func (u *Usecase) Authenticate(ctx context.Context, token string) (*domainUser.Actor, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	var actor *domainUser.Actor
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.FindOne(ctx, claims.ID)
		if errors.Is(err, domainUser.ErrNotFound) {
			return ErrInvalidToken
		}
		if err != nil {
			return err
		}
		actor = &domainUser.Actor{ID: usr.ID, Role: usr.Role}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return actor, nil
}

func (u *Usecase) sign(userID string) (string, error) {
	now := u.now()
	claims := Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ProfileWith reads the name and email from the table matching the user's role.
func ProfileWith(ctx context.Context, r uow.Repos, usr domainUser.User) (*UserDTO, error) {
	out := &UserDTO{ID: usr.ID, Role: usr.Role}
	switch usr.Role {
	case domainUser.RoleUnit:
		un, err := r.Units.FindOne(ctx, usr.ID)
		if err != nil {
			return nil, fmt.Errorf("unit profile %s: %w", usr.ID, err)
		}
		out.Name, out.Email = un.Name, un.Email
	case domainUser.RoleAdmin, domainUser.RoleSuperadmin:
		ad, err := r.Admins.FindOne(ctx, usr.ID)
		if err != nil {
			return nil, fmt.Errorf("admin profile %s: %w", usr.ID, err)
		}
		out.Name, out.Email = ad.Name, ad.Email
	default:
		return nil, fmt.Errorf("user %s has unknown role %q", usr.ID, usr.Role)
	}
	return out, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
