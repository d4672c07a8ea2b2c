package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/ledgerworks/bank-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

const firstAccountNumber = 1000
const firstTransactionID = 1

type accountEntry struct {
	mu      sync.Mutex
	account *domain.Account
}

// AccountRepository is the in-process account registry. Each account carries
// its own lock, so operations on distinct accounts run independently; the
// registry lock only guards the map. Transaction IDs come from one sequence
// shared by every account.
type AccountRepository struct {
	mu         sync.RWMutex
	accounts   map[int64]*accountEntry
	accountSeq *domain.Sequence
	txSeq      *domain.Sequence
	clock      func() time.Time
}

func NewAccountRepository() *AccountRepository {
	return NewAccountRepositoryWithClock(time.Now)
}

// NewAccountRepositoryWithClock lets callers pin the clock, which the
// calendar-month interest gate depends on.
func NewAccountRepositoryWithClock(clock func() time.Time) *AccountRepository {
	return &AccountRepository{
		accounts:   make(map[int64]*accountEntry),
		accountSeq: domain.NewSequence(firstAccountNumber),
		txSeq:      domain.NewSequence(firstTransactionID),
		clock:      clock,
	}
}

func (r *AccountRepository) Open(_ context.Context, holderName string, accountType domain.AccountType, initialDeposit decimal.Decimal) (domain.Account, error) {
	// Validate before drawing a number so failed opens leave no gap.
	if _, err := domain.ParseAccountType(string(accountType)); err != nil {
		return domain.Account{}, err
	}
	if initialDeposit.IsNegative() {
		return domain.Account{}, domain.ErrInvalidAmount
	}

	account, err := domain.NewAccount(r.accountSeq.Next(), holderName, accountType, initialDeposit, r.clock())
	if err != nil {
		return domain.Account{}, err
	}

	r.mu.Lock()
	r.accounts[account.AccountNumber] = &accountEntry{account: account}
	r.mu.Unlock()

	logger.Info("account repository open success", logger.Fields{
		"accountNumber": account.AccountNumber,
		"accountType":   string(account.AccountType),
	})

	return account.Snapshot(), nil
}

func (r *AccountRepository) GetByNumber(_ context.Context, accountNumber int64) (domain.Account, error) {
	e, err := r.entry(accountNumber)
	if err != nil {
		return domain.Account{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.account.Snapshot(), nil
}

func (r *AccountRepository) Deposit(_ context.Context, accountNumber int64, amount decimal.Decimal) (domain.Account, domain.Transaction, error) {
	e, err := r.entry(accountNumber)
	if err != nil {
		return domain.Account{}, domain.Transaction{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := e.account.Deposit(r.txSeq, amount, r.clock())
	if err != nil {
		return domain.Account{}, domain.Transaction{}, err
	}

	logger.Info("account repository deposit success", logger.Fields{
		"accountNumber": accountNumber,
		"transactionId": tx.TransactionID,
		"amount":        amount,
	})

	return e.account.Snapshot(), tx, nil
}

func (r *AccountRepository) Withdraw(_ context.Context, accountNumber int64, amount decimal.Decimal) (domain.Account, domain.Transaction, error) {
	e, err := r.entry(accountNumber)
	if err != nil {
		return domain.Account{}, domain.Transaction{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := e.account.Withdraw(r.txSeq, amount, r.clock())
	if err != nil {
		return domain.Account{}, domain.Transaction{}, err
	}

	logger.Info("account repository withdraw success", logger.Fields{
		"accountNumber": accountNumber,
		"transactionId": tx.TransactionID,
		"amount":        amount,
	})

	return e.account.Snapshot(), tx, nil
}

func (r *AccountRepository) ApplyInterest(_ context.Context, accountNumber int64, rate decimal.Decimal) (domain.Account, domain.InterestResult, error) {
	e, err := r.entry(accountNumber)
	if err != nil {
		return domain.Account{}, domain.InterestResult{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := e.account.ApplyInterest(r.txSeq, rate, r.clock())
	if err != nil {
		return domain.Account{}, domain.InterestResult{}, err
	}

	logger.Info("account repository apply interest", logger.Fields{
		"accountNumber": accountNumber,
		"status":        string(result.Status),
		"interest":      result.Interest,
	})

	return e.account.Snapshot(), result, nil
}

func (r *AccountRepository) Transfer(_ context.Context, fromAccountNumber, toAccountNumber int64, amount decimal.Decimal) (domain.TransferEntry, error) {
	if fromAccountNumber == toAccountNumber {
		return domain.TransferEntry{}, domain.ErrSameAccount
	}
	if !amount.IsPositive() {
		return domain.TransferEntry{}, domain.ErrInvalidAmount
	}

	from, err := r.entry(fromAccountNumber)
	if err != nil {
		return domain.TransferEntry{}, err
	}
	to, err := r.entry(toAccountNumber)
	if err != nil {
		return domain.TransferEntry{}, err
	}

	// Lock in account-number order so two opposite transfers cannot deadlock.
	first, second := from, to
	if toAccountNumber < fromAccountNumber {
		first, second = to, from
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	now := r.clock()

	out, err := from.account.TransferOut(r.txSeq, amount, now)
	if err != nil {
		return domain.TransferEntry{}, err
	}
	in, err := to.account.TransferIn(r.txSeq, amount, now)
	if err != nil {
		return domain.TransferEntry{}, err
	}

	logger.Info("account repository transfer success", logger.Fields{
		"fromAccountNumber": fromAccountNumber,
		"toAccountNumber":   toAccountNumber,
		"amount":            amount,
		"outTransactionId":  out.TransactionID,
		"inTransactionId":   in.TransactionID,
	})

	return domain.TransferEntry{
		From: from.account.Snapshot(),
		To:   to.account.Snapshot(),
		Out:  out,
		In:   in,
	}, nil
}

func (r *AccountRepository) entry(accountNumber int64) (*accountEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return e, nil
}
