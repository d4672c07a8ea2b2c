package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/bank-ledger/internal/adapter/repository/memory"
	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/ledgerworks/bank-ledger/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLedgerServiceDepositValidationError(t *testing.T) {
	svc := services.NewLedgerService(nil, decimal.RequireFromString("0.05"))

	_, err := svc.DepositFunds(context.Background(), models.DepositFundsRequest{
		AccountNumber: 1000,
		Amount:        decimal.Zero,
	})
	if err == nil {
		t.Fatal("expected validation error for non-positive amount")
	}
}

func TestLedgerServiceTransferValidationError(t *testing.T) {
	svc := services.NewLedgerService(nil, decimal.RequireFromString("0.05"))

	_, err := svc.TransferFunds(context.Background(), models.TransferFundsRequest{
		FromAccountNumber: 1000,
		ToAccountNumber:   1000,
		Amount:            decimal.RequireFromString("10"),
	})
	if err == nil {
		t.Fatal("expected validation error for self transfer")
	}
}

// Walks the canonical account lifecycle: open, deposit, failed and successful
// withdrawals, then interest on a zero balance.
func TestLedgerServiceAccountLifecycle(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo := memory.NewAccountRepositoryWithClock(fixedClock(now))
	accountSvc := services.NewAccountService(repo)
	ledgerSvc := services.NewLedgerService(repo, decimal.RequireFromString("0.05"))
	ctx := context.Background()

	initial := decimal.RequireFromString("1000.00")
	opened, err := accountSvc.OpenAccount(ctx, models.OpenAccountRequest{
		HolderName:     "Alice Doe",
		AccountType:    "Savings",
		InitialDeposit: &initial,
	})
	if err != nil {
		t.Fatalf("open account: %v", err)
	}
	accountNumber := opened.Data.AccountNumber
	if accountNumber != 1000 {
		t.Fatalf("expected account number 1000, got %d", accountNumber)
	}

	deposit, err := ledgerSvc.DepositFunds(ctx, models.DepositFundsRequest{
		AccountNumber: accountNumber,
		Amount:        decimal.RequireFromString("500.00"),
	})
	if err != nil {
		t.Fatalf("deposit funds: %v", err)
	}
	if !deposit.Data.Balance.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("expected balance 1500.00, got %s", deposit.Data.Balance)
	}

	failed, err := ledgerSvc.WithdrawFunds(ctx, models.WithdrawFundsRequest{
		AccountNumber: accountNumber,
		Amount:        decimal.RequireFromString("2000.00"),
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if failed.Message != "insufficient funds" {
		t.Fatalf("unexpected response message: %q", failed.Message)
	}

	balance, err := accountSvc.CheckBalance(ctx, accountNumber)
	if err != nil {
		t.Fatalf("check balance: %v", err)
	}
	if !balance.Data.Balance.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("failed withdrawal must not change balance, got %s", balance.Data.Balance)
	}

	withdrawal, err := ledgerSvc.WithdrawFunds(ctx, models.WithdrawFundsRequest{
		AccountNumber: accountNumber,
		Amount:        decimal.RequireFromString("1500.00"),
	})
	if err != nil {
		t.Fatalf("withdraw funds: %v", err)
	}
	if !withdrawal.Data.Balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", withdrawal.Data.Balance)
	}

	interest, err := ledgerSvc.ApplyInterest(ctx, models.ApplyInterestRequest{AccountNumber: accountNumber})
	if err != nil {
		t.Fatalf("apply interest: %v", err)
	}
	if interest.Data.Status != string(domain.InterestApplied) {
		t.Fatalf("expected interest applied, got %s", interest.Data.Status)
	}
	if !interest.Data.Interest.IsZero() || !interest.Data.Balance.IsZero() {
		t.Fatalf("interest on zero balance must be zero, got %s / %s", interest.Data.Interest, interest.Data.Balance)
	}

	statement, err := accountSvc.GetStatement(ctx, accountNumber)
	if err != nil {
		t.Fatalf("get statement: %v", err)
	}
	entries := statement.Data.Entries
	if len(entries) != 3 {
		t.Fatalf("expected 3 statement entries, got %d", len(entries))
	}
	wantTypes := []string{"Deposit", "Withdrawal", "Interest"}
	for i, want := range wantTypes {
		if entries[i].Type != want {
			t.Fatalf("entry %d: expected type %s, got %s", i, want, entries[i].Type)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].TransactionID <= entries[i-1].TransactionID {
			t.Fatalf("transaction IDs must increase, got %d after %d", entries[i].TransactionID, entries[i-1].TransactionID)
		}
	}
}

func TestLedgerServiceInterestSecondCallSameMonthIsNoOp(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo := memory.NewAccountRepositoryWithClock(fixedClock(now))
	accountSvc := services.NewAccountService(repo)
	ledgerSvc := services.NewLedgerService(repo, decimal.RequireFromString("0.05"))
	ctx := context.Background()

	initial := decimal.RequireFromString("1000.00")
	opened, err := accountSvc.OpenAccount(ctx, models.OpenAccountRequest{
		HolderName:     "Alice Doe",
		AccountType:    "Savings",
		InitialDeposit: &initial,
	})
	if err != nil {
		t.Fatalf("open account: %v", err)
	}

	first, err := ledgerSvc.ApplyInterest(ctx, models.ApplyInterestRequest{AccountNumber: opened.Data.AccountNumber})
	if err != nil {
		t.Fatalf("apply interest: %v", err)
	}
	if !first.Data.Balance.Equal(decimal.RequireFromString("1050.00")) {
		t.Fatalf("expected balance 1050.00, got %s", first.Data.Balance)
	}

	second, err := ledgerSvc.ApplyInterest(ctx, models.ApplyInterestRequest{AccountNumber: opened.Data.AccountNumber})
	if err != nil {
		t.Fatalf("apply interest again: %v", err)
	}
	if second.Data.Status != string(domain.InterestAlreadyApplied) {
		t.Fatalf("expected already applied status, got %s", second.Data.Status)
	}
	if !second.Data.Balance.Equal(first.Data.Balance) {
		t.Fatalf("repeat accrual must not change balance, got %s", second.Data.Balance)
	}
}

func TestLedgerServiceInterestNotApplicableForCurrentAccounts(t *testing.T) {
	repo := memory.NewAccountRepository()
	accountSvc := services.NewAccountService(repo)
	ledgerSvc := services.NewLedgerService(repo, decimal.RequireFromString("0.05"))
	ctx := context.Background()

	initial := decimal.RequireFromString("1000.00")
	opened, err := accountSvc.OpenAccount(ctx, models.OpenAccountRequest{
		HolderName:     "Bob Roe",
		AccountType:    "Current",
		InitialDeposit: &initial,
	})
	if err != nil {
		t.Fatalf("open account: %v", err)
	}

	resp, err := ledgerSvc.ApplyInterest(ctx, models.ApplyInterestRequest{AccountNumber: opened.Data.AccountNumber})
	if err != nil {
		t.Fatalf("apply interest: %v", err)
	}
	if resp.Data.Status != string(domain.InterestNotApplicable) {
		t.Fatalf("expected not applicable status, got %s", resp.Data.Status)
	}
	if !resp.Data.Balance.Equal(initial) {
		t.Fatalf("interest must not change a Current account balance, got %s", resp.Data.Balance)
	}

	statement, err := accountSvc.GetStatement(ctx, opened.Data.AccountNumber)
	if err != nil {
		t.Fatalf("get statement: %v", err)
	}
	if len(statement.Data.Entries) != 0 {
		t.Fatalf("no transaction may be logged, got %d entries", len(statement.Data.Entries))
	}
}

func TestLedgerServiceTransferFunds(t *testing.T) {
	repo := memory.NewAccountRepository()
	accountSvc := services.NewAccountService(repo)
	ledgerSvc := services.NewLedgerService(repo, decimal.RequireFromString("0.05"))
	ctx := context.Background()

	fromInitial := decimal.RequireFromString("500.00")
	from, err := accountSvc.OpenAccount(ctx, models.OpenAccountRequest{
		HolderName:     "Alice Doe",
		AccountType:    "Savings",
		InitialDeposit: &fromInitial,
	})
	if err != nil {
		t.Fatalf("open source account: %v", err)
	}
	to, err := accountSvc.OpenAccount(ctx, models.OpenAccountRequest{
		HolderName:  "Bob Roe",
		AccountType: "Current",
	})
	if err != nil {
		t.Fatalf("open destination account: %v", err)
	}

	resp, err := ledgerSvc.TransferFunds(ctx, models.TransferFundsRequest{
		FromAccountNumber: from.Data.AccountNumber,
		ToAccountNumber:   to.Data.AccountNumber,
		Amount:            decimal.RequireFromString("200.00"),
	})
	if err != nil {
		t.Fatalf("transfer funds: %v", err)
	}
	if !resp.Data.FromBalance.Equal(decimal.RequireFromString("300.00")) {
		t.Fatalf("expected source balance 300.00, got %s", resp.Data.FromBalance)
	}
	if !resp.Data.ToBalance.Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("expected destination balance 200.00, got %s", resp.Data.ToBalance)
	}
	if resp.Data.InTransactionID <= resp.Data.OutTransactionID {
		t.Fatalf("credit leg id must follow debit leg id, got %d and %d", resp.Data.InTransactionID, resp.Data.OutTransactionID)
	}
}
