package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type DepositFundsRequest struct {
	AccountNumber int64           `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r DepositFundsRequest) Validate() error {
	return validateMovement(r.AccountNumber, r.Amount)
}

type DepositFundsResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	TransactionID int64           `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
}

type WithdrawFundsRequest struct {
	AccountNumber int64           `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r WithdrawFundsRequest) Validate() error {
	return validateMovement(r.AccountNumber, r.Amount)
}

type WithdrawFundsResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	TransactionID int64           `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
}

type TransferFundsRequest struct {
	FromAccountNumber int64           `json:"fromAccountNumber"`
	ToAccountNumber   int64           `json:"toAccountNumber"`
	Amount            decimal.Decimal `json:"amount"`
}

func (r TransferFundsRequest) Validate() error {
	var errs []string

	if r.FromAccountNumber <= 0 {
		errs = append(errs, "fromAccountNumber is required")
	}
	if r.ToAccountNumber <= 0 {
		errs = append(errs, "toAccountNumber is required")
	}
	if r.FromAccountNumber > 0 && r.FromAccountNumber == r.ToAccountNumber {
		errs = append(errs, "fromAccountNumber and toAccountNumber must differ")
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransferFundsResponse struct {
	FromAccountNumber int64           `json:"fromAccountNumber"`
	ToAccountNumber   int64           `json:"toAccountNumber"`
	Amount            decimal.Decimal `json:"amount"`
	OutTransactionID  int64           `json:"outTransactionId"`
	InTransactionID   int64           `json:"inTransactionId"`
	FromBalance       decimal.Decimal `json:"fromBalance"`
	ToBalance         decimal.Decimal `json:"toBalance"`
}

type ApplyInterestRequest struct {
	AccountNumber int64            `json:"accountNumber"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
}

func (r ApplyInterestRequest) Validate() error {
	var errs []string

	if r.AccountNumber <= 0 {
		errs = append(errs, "accountNumber is required")
	}
	if r.Rate != nil && !r.Rate.IsPositive() {
		errs = append(errs, "rate must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ApplyInterestResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	Status        string          `json:"status"`
	Rate          decimal.Decimal `json:"rate"`
	Interest      decimal.Decimal `json:"interest"`
	Balance       decimal.Decimal `json:"balance"`
}

func validateMovement(accountNumber int64, amount decimal.Decimal) error {
	var errs []string

	if accountNumber <= 0 {
		errs = append(errs, "accountNumber is required")
	}
	if !amount.IsPositive() {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}
