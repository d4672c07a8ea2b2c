package service_interfaces

import (
	"context"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/bank-ledger/internal/commons"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	CheckBalance(ctx context.Context, accountNumber int64) (commons.Response[models.CheckBalanceResponse], error)
	GetStatement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error)
}
