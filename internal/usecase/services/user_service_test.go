package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/bank-ledger/internal/adapter/repository/memory"
	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/ledgerworks/bank-ledger/internal/usecase/services"
)

func TestUserServiceRegisterUserValidationError(t *testing.T) {
	svc := services.NewUserService(nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterUserRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty register request")
	}
}

func TestUserServiceLoginValidationError(t *testing.T) {
	svc := services.NewUserService(nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice"})
	if err == nil {
		t.Fatal("expected validation error for missing password")
	}
}

func TestUserServiceRegisterAndLogin(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	resp, err := svc.RegisterUser(ctx, models.RegisterUserRequest{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	if resp.Data == nil || resp.Data.Username != "alice" {
		t.Fatalf("unexpected register response: %+v", resp)
	}

	loginResp, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginResp.Data == nil || loginResp.Data.Username != "alice" {
		t.Fatalf("unexpected login response: %+v", loginResp)
	}
}

func TestUserServiceLoginRejectsWrongPassword(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, models.RegisterUserRequest{Username: "alice", Password: "secret"}); err != nil {
		t.Fatalf("register user: %v", err)
	}

	_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "Secret"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestUserServiceLoginRejectsUnknownUsername(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "nobody", Password: "secret"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestUserServiceRejectsDuplicateRegistration(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, models.RegisterUserRequest{Username: "alice", Password: "secret"}); err != nil {
		t.Fatalf("register user: %v", err)
	}

	resp, err := svc.RegisterUser(ctx, models.RegisterUserRequest{Username: "alice", Password: "other"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate username error, got %v", err)
	}
	if resp.Message != "username already taken" {
		t.Fatalf("unexpected response message: %q", resp.Message)
	}
}
