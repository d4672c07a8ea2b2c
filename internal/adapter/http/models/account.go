package models

import (
	"errors"
	"strings"

	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	HolderName     string           `json:"holderName"`
	AccountType    string           `json:"accountType"`
	InitialDeposit *decimal.Decimal `json:"initialDeposit,omitempty"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holderName is required")
	}
	accountType := strings.TrimSpace(r.AccountType)
	if accountType == "" {
		errs = append(errs, "accountType is required")
	} else if _, err := domain.ParseAccountType(accountType); err != nil {
		errs = append(errs, "accountType must be Savings or Current")
	}
	if r.InitialDeposit != nil && r.InitialDeposit.IsNegative() {
		errs = append(errs, "initialDeposit cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type OpenAccountResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     string          `json:"createdAt"`
}

type CheckBalanceResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	Balance       decimal.Decimal `json:"balance"`
}

type StatementEntry struct {
	TransactionID int64           `json:"transactionId"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
}

type StatementResponse struct {
	AccountNumber int64            `json:"accountNumber"`
	HolderName    string           `json:"holderName"`
	AccountType   string           `json:"accountType"`
	Entries       []StatementEntry `json:"entries"`
	Balance       decimal.Decimal  `json:"balance"`
}
