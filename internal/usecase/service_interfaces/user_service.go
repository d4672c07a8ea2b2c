package service_interfaces

import (
	"context"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/bank-ledger/internal/commons"
)

type UserService interface {
	RegisterUser(ctx context.Context, req models.RegisterUserRequest) (commons.Response[models.RegisterUserResponse], error)
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
}
