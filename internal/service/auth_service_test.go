package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skillforge-dev/skillforge/config"
	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/model"
	"github.com/skillforge-dev/skillforge/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)

	registered, err := svc.Register(dto.RegisterRequest{Email: "dev@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if registered.Token == "" {
		t.Fatal("expected a signed token")
	}
	if registered.User.Email != "dev@example.com" {
		t.Fatalf("unexpected user email %q", registered.User.Email)
	}
	if registered.User.Profile.Skills == nil {
		t.Fatal("expected empty skills slice, not nil")
	}

	loggedIn, err := svc.Login(dto.LoginRequest{Email: "dev@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if loggedIn.User.ID != registered.User.ID {
		t.Fatalf("login returned a different user: %d vs %d", loggedIn.User.ID, registered.User.ID)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)

	if _, err := svc.Register(dto.RegisterRequest{Email: "dev@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	_, err := svc.Register(dto.RegisterRequest{Email: "dev@example.com", Password: "other"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	if _, err := svc.Register(dto.RegisterRequest{Email: "dev@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.Login(dto.LoginRequest{Email: "dev@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestTokenCarriesUserClaims(t *testing.T) {
	svc := newTestAuthService(t)

	registered, err := svc.Register(dto.RegisterRequest{Email: "dev@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	parsed, err := jwt.Parse(registered.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	sub, ok := claims["sub"].(float64)
	if !ok || uint(sub) != registered.User.ID {
		t.Fatalf("expected sub claim %d, got %v", registered.User.ID, claims["sub"])
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) <= time.Now().Unix() {
		t.Fatalf("expected future exp claim, got %v", claims["exp"])
	}
}
