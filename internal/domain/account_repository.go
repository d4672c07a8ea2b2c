package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// TransferEntry is the double-entry record of a completed transfer: the
// debit leg on the source account and the credit leg on the destination.
type TransferEntry struct {
	From Account
	To   Account
	Out  Transaction
	In   Transaction
}

// AccountRepository is the account registry: it issues account numbers,
// resolves accounts, and serializes every mutation per account so the
// balance-equals-sum-of-log invariant holds for concurrent callers.
type AccountRepository interface {
	Open(ctx context.Context, holderName string, accountType AccountType, initialDeposit decimal.Decimal) (Account, error)
	GetByNumber(ctx context.Context, accountNumber int64) (Account, error)
	Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (Account, Transaction, error)
	Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (Account, Transaction, error)
	ApplyInterest(ctx context.Context, accountNumber int64, rate decimal.Decimal) (Account, InterestResult, error)
	Transfer(ctx context.Context, fromAccountNumber, toAccountNumber int64, amount decimal.Decimal) (TransferEntry, error)
}
