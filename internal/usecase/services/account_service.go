package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/bank-ledger/internal/commons"
	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/ledgerworks/bank-ledger/internal/logger"
	"github.com/ledgerworks/bank-ledger/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// Verify that AccountService implements the service_interfaces.AccountService interface
var _ service_interfaces.AccountService = (*AccountService)(nil)

type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error()), err
	}

	accountType, err := domain.ParseAccountType(strings.TrimSpace(req.AccountType))
	if err != nil {
		logger.Error("account service open account invalid type", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", "accountType must be Savings or Current"), err
	}

	initialDeposit := decimal.Zero
	if req.InitialDeposit != nil {
		initialDeposit = *req.InitialDeposit
	}

	account, err := s.accountRepo.Open(ctx, strings.TrimSpace(req.HolderName), accountType, initialDeposit)
	if err != nil {
		logger.Error("account service open account repository failed", err, logger.Fields{
			"accountType": string(accountType),
		})
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	response := models.OpenAccountResponse{
		AccountNumber: account.AccountNumber,
		HolderName:    account.HolderName,
		AccountType:   string(account.AccountType),
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"accountType":   response.AccountType,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *AccountService) CheckBalance(ctx context.Context, accountNumber int64) (commons.Response[models.CheckBalanceResponse], error) {
	logger.Info("account service check balance request", logger.Fields{
		"accountNumber": accountNumber,
	})

	if accountNumber <= 0 {
		err := fmt.Errorf("accountNumber is required")
		return commons.ErrorResponse[models.CheckBalanceResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("account service check balance failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.CheckBalanceResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.CheckBalanceResponse]("failed to check balance", "Unable to check balance right now"), err
	}

	response := models.CheckBalanceResponse{
		AccountNumber: account.AccountNumber,
		HolderName:    account.HolderName,
		Balance:       account.Balance,
	}

	logger.Info("account service check balance success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("balance fetched successfully", response), nil
}

func (s *AccountService) GetStatement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error) {
	logger.Info("account service get statement request", logger.Fields{
		"accountNumber": accountNumber,
	})

	if accountNumber <= 0 {
		err := fmt.Errorf("accountNumber is required")
		return commons.ErrorResponse[models.StatementResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("account service get statement failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.StatementResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.StatementResponse]("failed to get statement", "Unable to get statement right now"), err
	}

	// Entries render in insertion order, which is chronological for an
	// append-only log.
	entries := make([]models.StatementEntry, 0, len(account.Transactions))
	for _, tx := range account.Transactions {
		entries = append(entries, models.StatementEntry{
			TransactionID: tx.TransactionID,
			Date:          tx.Timestamp.Format(time.RFC3339),
			Type:          string(tx.Type),
			Amount:        tx.Amount,
		})
	}

	response := models.StatementResponse{
		AccountNumber: account.AccountNumber,
		HolderName:    account.HolderName,
		AccountType:   string(account.AccountType),
		Entries:       entries,
		Balance:       account.Balance,
	}

	logger.Info("account service get statement success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"entryCount":    len(response.Entries),
	})

	return commons.SuccessResponse("statement generated successfully", response), nil
}
