package service_interfaces

import (
	"context"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/bank-ledger/internal/commons"
)

type LedgerService interface {
	DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.DepositFundsResponse], error)
	WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.WithdrawFundsResponse], error)
	TransferFunds(ctx context.Context, req models.TransferFundsRequest) (commons.Response[models.TransferFundsResponse], error)
	ApplyInterest(ctx context.Context, req models.ApplyInterestRequest) (commons.Response[models.ApplyInterestResponse], error)
}
