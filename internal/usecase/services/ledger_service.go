package services

import (
	"context"
	"errors"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/bank-ledger/internal/commons"
	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/ledgerworks/bank-ledger/internal/logger"
	"github.com/ledgerworks/bank-ledger/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// Verify that LedgerService implements the service_interfaces.LedgerService interface
var _ service_interfaces.LedgerService = (*LedgerService)(nil)

type LedgerService struct {
	accountRepo domain.AccountRepository
	defaultRate decimal.Decimal
}

func NewLedgerService(accountRepo domain.AccountRepository, defaultRate decimal.Decimal) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		defaultRate: defaultRate,
	}
}

func (s *LedgerService) DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.DepositFundsResponse], error) {
	logger.Info("ledger service deposit funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service deposit funds validation failed", err, nil)
		return commons.ErrorResponse[models.DepositFundsResponse]("validation failed", err.Error()), err
	}

	account, tx, err := s.accountRepo.Deposit(ctx, req.AccountNumber, req.Amount)
	if err != nil {
		logger.Error("ledger service deposit funds failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"amount":        req.Amount,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.DepositFundsResponse]("Account not found"), err
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return commons.ErrorResponse[models.DepositFundsResponse]("validation failed", "amount must be greater than zero"), err
		}
		return commons.ErrorResponse[models.DepositFundsResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	response := models.DepositFundsResponse{
		AccountNumber: account.AccountNumber,
		TransactionID: tx.TransactionID,
		Amount:        tx.Amount,
		Balance:       account.Balance,
	}

	logger.Info("ledger service deposit funds success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"transactionId": response.TransactionID,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("funds deposited successfully", response), nil
}

func (s *LedgerService) WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.WithdrawFundsResponse], error) {
	logger.Info("ledger service withdraw funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service withdraw funds validation failed", err, nil)
		return commons.ErrorResponse[models.WithdrawFundsResponse]("validation failed", err.Error()), err
	}

	account, tx, err := s.accountRepo.Withdraw(ctx, req.AccountNumber, req.Amount)
	if err != nil {
		logger.Error("ledger service withdraw funds failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"amount":        req.Amount,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.WithdrawFundsResponse]("Account not found"), err
		}
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.WithdrawFundsResponse]("insufficient funds", "withdrawal amount exceeds the account balance"), err
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return commons.ErrorResponse[models.WithdrawFundsResponse]("validation failed", "amount must be greater than zero"), err
		}
		return commons.ErrorResponse[models.WithdrawFundsResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
	}

	response := models.WithdrawFundsResponse{
		AccountNumber: account.AccountNumber,
		TransactionID: tx.TransactionID,
		Amount:        tx.Amount,
		Balance:       account.Balance,
	}

	logger.Info("ledger service withdraw funds success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"transactionId": response.TransactionID,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("funds withdrawn successfully", response), nil
}

func (s *LedgerService) TransferFunds(ctx context.Context, req models.TransferFundsRequest) (commons.Response[models.TransferFundsResponse], error) {
	logger.Info("ledger service transfer funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service transfer funds validation failed", err, nil)
		return commons.ErrorResponse[models.TransferFundsResponse]("validation failed", err.Error()), err
	}

	entry, err := s.accountRepo.Transfer(ctx, req.FromAccountNumber, req.ToAccountNumber, req.Amount)
	if err != nil {
		logger.Error("ledger service transfer funds failed", err, logger.Fields{
			"fromAccountNumber": req.FromAccountNumber,
			"toAccountNumber":   req.ToAccountNumber,
			"amount":            req.Amount,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransferFundsResponse]("Account not found"), err
		}
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.TransferFundsResponse]("insufficient funds", "transfer amount exceeds the source account balance"), err
		}
		if errors.Is(err, domain.ErrSameAccount) || errors.Is(err, domain.ErrInvalidAmount) {
			return commons.ErrorResponse[models.TransferFundsResponse]("validation failed", err.Error()), err
		}
		return commons.ErrorResponse[models.TransferFundsResponse]("failed to transfer funds", "Unable to transfer funds right now"), err
	}

	response := models.TransferFundsResponse{
		FromAccountNumber: entry.From.AccountNumber,
		ToAccountNumber:   entry.To.AccountNumber,
		Amount:            entry.Out.Amount,
		OutTransactionID:  entry.Out.TransactionID,
		InTransactionID:   entry.In.TransactionID,
		FromBalance:       entry.From.Balance,
		ToBalance:         entry.To.Balance,
	}

	logger.Info("ledger service transfer funds success", logger.Fields{
		"fromAccountNumber": response.FromAccountNumber,
		"toAccountNumber":   response.ToAccountNumber,
		"outTransactionId":  response.OutTransactionID,
		"inTransactionId":   response.InTransactionID,
	})

	return commons.SuccessResponse("funds transferred successfully", response), nil
}

func (s *LedgerService) ApplyInterest(ctx context.Context, req models.ApplyInterestRequest) (commons.Response[models.ApplyInterestResponse], error) {
	logger.Info("ledger service apply interest request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service apply interest validation failed", err, nil)
		return commons.ErrorResponse[models.ApplyInterestResponse]("validation failed", err.Error()), err
	}

	rate := s.defaultRate
	if req.Rate != nil {
		rate = *req.Rate
	}

	account, result, err := s.accountRepo.ApplyInterest(ctx, req.AccountNumber, rate)
	if err != nil {
		logger.Error("ledger service apply interest failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"rate":          rate,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.ApplyInterestResponse]("Account not found"), err
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return commons.ErrorResponse[models.ApplyInterestResponse]("validation failed", "rate must be greater than zero"), err
		}
		return commons.ErrorResponse[models.ApplyInterestResponse]("failed to apply interest", "Unable to apply interest right now"), err
	}

	response := models.ApplyInterestResponse{
		AccountNumber: account.AccountNumber,
		Status:        string(result.Status),
		Rate:          rate,
		Interest:      result.Interest,
		Balance:       account.Balance,
	}

	message := interestMessage(result.Status)

	logger.Info("ledger service apply interest result", logger.Fields{
		"accountNumber": response.AccountNumber,
		"status":        response.Status,
		"interest":      response.Interest,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse(message, response), nil
}

// The two no-op outcomes are reported as successful calls; they are expected
// behavior, not failures.
func interestMessage(status domain.InterestStatus) string {
	switch status {
	case domain.InterestNotApplicable:
		return "interest not applicable for this account type"
	case domain.InterestAlreadyApplied:
		return "interest already applied for this month"
	default:
		return "interest applied successfully"
	}
}
