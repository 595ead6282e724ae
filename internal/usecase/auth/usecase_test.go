package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/testutil/sqlitedb"
	"greentracker-backend/internal/testutil/uowmock"
	"greentracker-backend/internal/testutil/usermock"

	"github.com/golang-jwt/jwt/v5"
)

const secret = "0123456789abcdef0123"

func seed(t *testing.T, repos uow.Repos, id string, role domainUser.Role, password string) {
	t.Helper()
	ctx := context.Background()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	if err := repos.Users.Create(ctx, &domainUser.User{ID: id, PasswordHash: hash, Role: role}); err != nil {
		t.Fatal(err)
	}
	if role == domainUser.RoleUnit {
		err = repos.Units.Create(ctx, &domainUser.Unit{ID: id, Name: "Engineering", Email: "eng@uni.test"})
	} else {
		err = repos.Admins.Create(ctx, &domainUser.Admin{ID: id, Name: "Root", Email: "root@uni.test"})
	}
	if err != nil {
		t.Fatal(err)
	}
}

func TestLogin(t *testing.T) {
	tx, repos := sqlitedb.UoW(t)
	seed(t, repos, "unit-1", domainUser.RoleUnit, "correct horse")
	uc := NewUsecase(tx, secret, time.Hour)
	ctx := context.Background()

	out, err := uc.Login(ctx, LoginInput{ID: "unit-1", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Token == "" || out.User.Role != domainUser.RoleUnit || out.User.Name != "Engineering" {
		t.Fatalf("login = %+v", out)
	}

	if _, err := uc.Login(ctx, LoginInput{ID: "unit-1", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Login(ctx, LoginInput{ID: "nobody", Password: "correct horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown id: want ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	tx, repos := sqlitedb.UoW(t)
	seed(t, repos, "admin-1", domainUser.RoleSuperadmin, "s3cret-pass")
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUsecase(tx, secret, time.Hour).WithClock(func() time.Time { return now })
	ctx := context.Background()

	out, err := uc.Login(ctx, LoginInput{ID: "admin-1", Password: "s3cret-pass"})
	if err != nil {
		t.Fatal(err)
	}

	actor, err := uc.Authenticate(ctx, out.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if actor.ID != "admin-1" || actor.Role != domainUser.RoleSuperadmin {
		t.Fatalf("actor = %+v", actor)
	}

	other := NewUsecase(tx, "another-secret-value", time.Hour).WithClock(func() time.Time { return now })
	if _, err := other.Authenticate(ctx, out.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign signature: want ErrInvalidToken, got %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: "admin-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Authenticate(ctx, unsigned); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("alg none: want ErrInvalidToken, got %v", err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := uc.Authenticate(ctx, out.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired: want ErrInvalidToken, got %v", err)
	}
	now = now.Add(-2 * time.Hour)

	if err := repos.Admins.Delete(ctx, "admin-1"); err != nil {
		t.Fatal(err)
	}
	if err := repos.Users.Delete(ctx, "admin-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Authenticate(ctx, out.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("deleted user: want ErrInvalidToken, got %v", err)
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pa55word")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPassword(hash, "pa55word") || CheckPassword(hash, "pa55worD") {
		t.Fatalf("CheckPassword mismatch")
	}
}

func TestLogin_StoreFailures(t *testing.T) {
	ctx := context.Background()
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatal(err)
	}
	boom := errors.New("connection reset")

	t.Run("user lookup error is not masked", func(t *testing.T) {
		users := &usermock.Repo{FindOneFn: func(context.Context, string) (*domainUser.User, error) { return nil, boom }}
		uc := NewUsecase(uowmock.Passthrough(uow.Repos{Users: users}), secret, time.Hour)
		if _, err := uc.Login(ctx, LoginInput{ID: "unit-1", Password: "correct horse"}); !errors.Is(err, boom) {
			t.Fatalf("want store error, got %v", err)
		}
	})

	t.Run("missing profile row", func(t *testing.T) {
		users := &usermock.Repo{FindOneFn: func(_ context.Context, id string) (*domainUser.User, error) {
			return &domainUser.User{ID: id, PasswordHash: hash, Role: domainUser.RoleUnit}, nil
		}}
		uc := NewUsecase(uowmock.Passthrough(uow.Repos{Users: users, Units: &usermock.UnitRepo{}}), secret, time.Hour)
		_, err := uc.Login(ctx, LoginInput{ID: "unit-1", Password: "correct horse"})
		if !errors.Is(err, domainUser.ErrNotFound) || errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("want wrapped ErrNotFound, got %v", err)
		}
	})

	t.Run("admin profile", func(t *testing.T) {
		users := &usermock.Repo{FindOneFn: func(_ context.Context, id string) (*domainUser.User, error) {
			return &domainUser.User{ID: id, PasswordHash: hash, Role: domainUser.RoleAdmin}, nil
		}}
		admins := &usermock.AdminRepo{FindOneFn: func(_ context.Context, id string) (*domainUser.Admin, error) {
			return &domainUser.Admin{ID: id, Name: "Reviewer"}, nil
		}}
		uc := NewUsecase(uowmock.Passthrough(uow.Repos{Users: users, Admins: admins}), secret, time.Hour)
		out, err := uc.Login(ctx, LoginInput{ID: "admin-9", Password: "correct horse"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if out.User.Name != "Reviewer" || out.User.Role != domainUser.RoleAdmin {
			t.Fatalf("profile = %+v", out.User)
		}
	})
}
