package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings AccountType = "Savings"
	AccountTypeCurrent AccountType = "Current"
)

// ParseAccountType rejects anything outside the closed set of account types.
func ParseAccountType(raw string) (AccountType, error) {
	switch AccountType(raw) {
	case AccountTypeSavings:
		return AccountTypeSavings, nil
	case AccountTypeCurrent:
		return AccountTypeCurrent, nil
	default:
		return "", ErrInvalidAccountType
	}
}

// Account owns one append-only transaction log and the balance consistent
// with it: Balance always equals the opening deposit plus the signed sum of
// every logged entry.
type Account struct {
	AccountNumber  int64
	HolderName     string
	AccountType    AccountType
	Balance        decimal.Decimal
	Transactions   []Transaction
	LastInterestAt time.Time
	CreatedAt      time.Time
}

// Snapshot returns a copy whose transaction log is detached from the live
// account, safe to hand to readers while the account keeps mutating.
func (a *Account) Snapshot() Account {
	cp := *a
	cp.Transactions = append([]Transaction(nil), a.Transactions...)
	return cp
}
