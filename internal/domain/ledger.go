package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InterestStatus string

const (
	InterestApplied        InterestStatus = "applied"
	InterestNotApplicable  InterestStatus = "not_applicable"
	InterestAlreadyApplied InterestStatus = "already_applied"
)

// InterestResult reports what an accrual attempt did. Transaction is only
// meaningful when Status is InterestApplied.
type InterestResult struct {
	Status      InterestStatus
	Interest    decimal.Decimal
	Transaction Transaction
}

// NewAccount opens an account with its balance set to the initial deposit.
// The opening deposit is absorbed into the balance directly; no transaction
// is logged for it.
func NewAccount(number int64, holderName string, accountType AccountType, initialDeposit decimal.Decimal, now time.Time) (*Account, error) {
	if _, err := ParseAccountType(string(accountType)); err != nil {
		return nil, err
	}
	if initialDeposit.IsNegative() {
		return nil, ErrInvalidAmount
	}

	return &Account{
		AccountNumber: number,
		HolderName:    holderName,
		AccountType:   accountType,
		Balance:       initialDeposit.Round(2),
		Transactions:  []Transaction{},
		CreatedAt:     now,
	}, nil
}

// Deposit credits amount and appends the matching ledger entry. Callers
// serialize access to the account; the balance update and the log append are
// one step from their point of view.
func (a *Account) Deposit(seq *Sequence, amount decimal.Decimal, now time.Time) (Transaction, error) {
	return a.credit(seq, TransactionDeposit, amount, now)
}

// Withdraw debits amount, refusing any withdrawal that would leave the
// balance negative. On failure the account is untouched.
func (a *Account) Withdraw(seq *Sequence, amount decimal.Decimal, now time.Time) (Transaction, error) {
	return a.debit(seq, TransactionWithdrawal, amount, now)
}

// TransferIn and TransferOut are the two legs of an account-to-account
// transfer; they follow the same rules as Deposit and Withdraw but keep
// their own entry types in the log.
func (a *Account) TransferIn(seq *Sequence, amount decimal.Decimal, now time.Time) (Transaction, error) {
	return a.credit(seq, TransactionTransferIn, amount, now)
}

func (a *Account) TransferOut(seq *Sequence, amount decimal.Decimal, now time.Time) (Transaction, error) {
	return a.debit(seq, TransactionTransferOut, amount, now)
}

// ApplyInterest accrues Balance*rate on Savings accounts, at most once per
// calendar month. A non-Savings account or a repeat call within the same
// month is a reported no-op, not an error. A zero interest amount is still
// logged; the accrual happened.
func (a *Account) ApplyInterest(seq *Sequence, rate decimal.Decimal, now time.Time) (InterestResult, error) {
	if !rate.IsPositive() {
		return InterestResult{}, ErrInvalidAmount
	}
	if a.AccountType != AccountTypeSavings {
		return InterestResult{Status: InterestNotApplicable}, nil
	}
	if accruedThisMonth(a.LastInterestAt, now) {
		return InterestResult{Status: InterestAlreadyApplied}, nil
	}

	interest := a.Balance.Mul(rate).Round(2)
	a.Balance = a.Balance.Add(interest)
	tx := a.append(seq, TransactionInterest, interest, now)
	a.LastInterestAt = now

	return InterestResult{Status: InterestApplied, Interest: interest, Transaction: tx}, nil
}

func (a *Account) credit(seq *Sequence, txType TransactionType, amount decimal.Decimal, now time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return a.append(seq, txType, amount, now), nil
}

func (a *Account) debit(seq *Sequence, txType TransactionType, amount decimal.Decimal, now time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return Transaction{}, ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return a.append(seq, txType, amount, now), nil
}

func (a *Account) append(seq *Sequence, txType TransactionType, amount decimal.Decimal, now time.Time) Transaction {
	tx := Transaction{
		TransactionID: seq.Next(),
		Timestamp:     now,
		Type:          txType,
		Amount:        amount,
	}
	a.Transactions = append(a.Transactions, tx)
	return tx
}

func accruedThisMonth(last, now time.Time) bool {
	if last.IsZero() {
		return false
	}
	return last.Year() == now.Year() && last.Month() == now.Month()
}
