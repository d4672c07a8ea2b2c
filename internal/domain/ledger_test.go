package domain_test

import (
	"testing"
	"time"

	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func dec(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	require.NoError(t, err)
	return d
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(dec(t, want)), "expected %s, got %s", want, got)
}

func openSavings(t *testing.T, initial string) (*domain.Account, *domain.Sequence) {
	t.Helper()
	account, err := domain.NewAccount(1000, "Alice Doe", domain.AccountTypeSavings, dec(t, initial), testTime)
	require.NoError(t, err)
	return account, domain.NewSequence(1)
}

func TestNewAccountRejectsUnknownType(t *testing.T) {
	_, err := domain.NewAccount(1000, "Alice Doe", domain.AccountType("Checking"), decimal.Zero, testTime)
	require.ErrorIs(t, err, domain.ErrInvalidAccountType)
}

func TestNewAccountRejectsNegativeInitialDeposit(t *testing.T) {
	_, err := domain.NewAccount(1000, "Alice Doe", domain.AccountTypeSavings, dec(t, "-1"), testTime)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestNewAccountAbsorbsInitialDepositWithoutLogging(t *testing.T) {
	account, _ := openSavings(t, "1000.00")

	requireDecimal(t, "1000.00", account.Balance)
	require.Empty(t, account.Transactions)
}

func TestBalanceEqualsInitialDepositPlusSignedSum(t *testing.T) {
	account, seq := openSavings(t, "1000.00")

	_, err := account.Deposit(seq, dec(t, "500.00"), testTime)
	require.NoError(t, err)
	_, err = account.Withdraw(seq, dec(t, "200.00"), testTime)
	require.NoError(t, err)
	_, err = account.Deposit(seq, dec(t, "75.50"), testTime)
	require.NoError(t, err)

	signedSum := decimal.Zero
	for _, tx := range account.Transactions {
		signedSum = signedSum.Add(tx.Signed())
	}

	require.Len(t, account.Transactions, 3)
	requireDecimal(t, "1375.50", account.Balance)
	require.True(t, account.Balance.Equal(dec(t, "1000.00").Add(signedSum)))
}

func TestDepositRejectsNonPositiveAmounts(t *testing.T) {
	account, seq := openSavings(t, "100")

	for _, raw := range []string{"0", "-10"} {
		_, err := account.Deposit(seq, dec(t, raw), testTime)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	}

	requireDecimal(t, "100", account.Balance)
	require.Empty(t, account.Transactions)
}

func TestWithdrawNeverDrivesBalanceNegative(t *testing.T) {
	account, seq := openSavings(t, "100")

	_, err := account.Withdraw(seq, dec(t, "100.01"), testTime)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	requireDecimal(t, "100", account.Balance)
	require.Empty(t, account.Transactions)

	tx, err := account.Withdraw(seq, dec(t, "100"), testTime)
	require.NoError(t, err)
	require.Equal(t, domain.TransactionWithdrawal, tx.Type)
	requireDecimal(t, "100", tx.Amount)
	requireDecimal(t, "0", account.Balance)
}

func TestWithdrawalStoresPositiveMagnitude(t *testing.T) {
	account, seq := openSavings(t, "100")

	tx, err := account.Withdraw(seq, dec(t, "40"), testTime)
	require.NoError(t, err)
	require.True(t, tx.Amount.IsPositive())
	requireDecimal(t, "-40", tx.Signed())
}

func TestApplyInterestSkipsCurrentAccounts(t *testing.T) {
	account, err := domain.NewAccount(1000, "Bob Roe", domain.AccountTypeCurrent, dec(t, "1000"), testTime)
	require.NoError(t, err)
	seq := domain.NewSequence(1)

	result, err := account.ApplyInterest(seq, dec(t, "0.05"), testTime)
	require.NoError(t, err)
	require.Equal(t, domain.InterestNotApplicable, result.Status)
	requireDecimal(t, "1000", account.Balance)
	require.Empty(t, account.Transactions)
}

func TestApplyInterestAccruesOncePerCalendarMonth(t *testing.T) {
	account, seq := openSavings(t, "1000.00")

	result, err := account.ApplyInterest(seq, dec(t, "0.05"), testTime)
	require.NoError(t, err)
	require.Equal(t, domain.InterestApplied, result.Status)
	requireDecimal(t, "50.00", result.Interest)
	requireDecimal(t, "1050.00", account.Balance)
	require.Len(t, account.Transactions, 1)
	require.Equal(t, domain.TransactionInterest, account.Transactions[0].Type)

	sameMonth := testTime.AddDate(0, 0, 10)
	result, err = account.ApplyInterest(seq, dec(t, "0.05"), sameMonth)
	require.NoError(t, err)
	require.Equal(t, domain.InterestAlreadyApplied, result.Status)
	requireDecimal(t, "1050.00", account.Balance)
	require.Len(t, account.Transactions, 1)

	nextMonth := testTime.AddDate(0, 1, 0)
	result, err = account.ApplyInterest(seq, dec(t, "0.05"), nextMonth)
	require.NoError(t, err)
	require.Equal(t, domain.InterestApplied, result.Status)
	requireDecimal(t, "52.50", result.Interest)
	requireDecimal(t, "1102.50", account.Balance)
	require.Len(t, account.Transactions, 2)
}

func TestApplyInterestOnZeroBalanceStillLogsEntry(t *testing.T) {
	account, seq := openSavings(t, "0")

	result, err := account.ApplyInterest(seq, dec(t, "0.05"), testTime)
	require.NoError(t, err)
	require.Equal(t, domain.InterestApplied, result.Status)
	requireDecimal(t, "0", result.Interest)
	requireDecimal(t, "0", account.Balance)
	require.Len(t, account.Transactions, 1)
	requireDecimal(t, "0", account.Transactions[0].Amount)
}

func TestApplyInterestRejectsNonPositiveRate(t *testing.T) {
	account, seq := openSavings(t, "1000")

	_, err := account.ApplyInterest(seq, decimal.Zero, testTime)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	require.Empty(t, account.Transactions)
}

func TestTransferLegsKeepDirectionInType(t *testing.T) {
	account, seq := openSavings(t, "500")

	out, err := account.TransferOut(seq, dec(t, "200"), testTime)
	require.NoError(t, err)
	require.Equal(t, domain.TransactionTransferOut, out.Type)
	requireDecimal(t, "-200", out.Signed())
	requireDecimal(t, "300", account.Balance)

	in, err := account.TransferIn(seq, dec(t, "50"), testTime)
	require.NoError(t, err)
	require.Equal(t, domain.TransactionTransferIn, in.Type)
	requireDecimal(t, "50", in.Signed())
	requireDecimal(t, "350", account.Balance)
}

func TestSnapshotDetachesTransactionLog(t *testing.T) {
	account, seq := openSavings(t, "100")
	_, err := account.Deposit(seq, dec(t, "10"), testTime)
	require.NoError(t, err)

	snapshot := account.Snapshot()

	_, err = account.Deposit(seq, dec(t, "10"), testTime)
	require.NoError(t, err)

	require.Len(t, snapshot.Transactions, 1)
	require.Len(t, account.Transactions, 2)
	requireDecimal(t, "110", snapshot.Balance)
}
