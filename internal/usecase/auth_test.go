package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/test"
)

func newAuthUseCase(users *test.UserRepositoryStub) *AuthUseCase {
	return NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{})
}

func TestAuthUseCaseRegisterStoresRoleAndCountry(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := newAuthUseCase(users)

	user, token, err := uc.Register(context.Background(), "farm-supplies", "secret", model.RoleSeller, "nl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected token to be issued")
	}
	if user.Role != model.RoleSeller {
		t.Fatalf("unexpected role %s", user.Role)
	}
	if user.Country != "NL" {
		t.Fatalf("expected country to be upper-cased, got %q", user.Country)
	}
}

func TestAuthUseCaseRegisterRejectsUnknownRole(t *testing.T) {
	uc := newAuthUseCase(test.NewUserRepositoryStub())

	_, _, err := uc.Register(context.Background(), "someone", "secret", "auditor", "US")
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthUseCaseRegisterDuplicateLogin(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := newAuthUseCase(users)

	if _, _, err := uc.Register(context.Background(), "dup", "secret", model.RoleBuyer, "US"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "dup", "secret", model.RoleBuyer, "US"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := newAuthUseCase(users)

	if _, _, err := uc.Register(context.Background(), "buyer", "secret", model.RoleBuyer, "DE"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "buyer", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	user, token, err := uc.Authenticate(context.Background(), "buyer", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" || user.Login != "buyer" {
		t.Fatalf("unexpected result %v %q", user, token)
	}
}

func TestAuthUseCaseAuthenticateUnknownLogin(t *testing.T) {
	uc := newAuthUseCase(test.NewUserRepositoryStub())

	if _, _, err := uc.Authenticate(context.Background(), "ghost", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthUseCaseParseTokenEmpty(t *testing.T) {
	uc := newAuthUseCase(test.NewUserRepositoryStub())

	if _, _, err := uc.ParseToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}
