package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit     TransactionType = "Deposit"
	TransactionWithdrawal  TransactionType = "Withdrawal"
	TransactionInterest    TransactionType = "Interest"
	TransactionTransferIn  TransactionType = "TransferIn"
	TransactionTransferOut TransactionType = "TransferOut"
)

// Transaction is one immutable ledger entry. Amount is always the positive
// magnitude; Type carries the direction.
type Transaction struct {
	TransactionID int64
	Timestamp     time.Time
	Type          TransactionType
	Amount        decimal.Decimal
}

// Signed returns the amount with the sign it contributes to the balance.
func (t Transaction) Signed() decimal.Decimal {
	switch t.Type {
	case TransactionWithdrawal, TransactionTransferOut:
		return t.Amount.Neg()
	default:
		return t.Amount
	}
}
