package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrZeroAmount             = errors.New("transaction amount must be non-zero")
	ErrAmountSignMismatch     = errors.New("transaction amount sign does not match type")
	ErrCategoryRequired       = errors.New("transaction category is required")
	ErrNameRequired           = errors.New("transaction name is required")
	ErrDateRequired           = errors.New("transaction date is required")
)

// Transaction represents a single bank transaction. Amounts are signed:
// negative for debits, positive for credits, and the Type field must agree
// with the sign.
type Transaction struct {
	Seq      int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	ID       string          `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	Name     string          `gorm:"type:varchar(255);not null" json:"name"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Date     time.Time       `gorm:"not null;index" json:"date"`
	Type     string          `gorm:"type:varchar(10);not null" json:"type"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// Validate rejects malformed records instead of letting them propagate into
// aggregation silently.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction ID is required")
	}

	if t.Name == "" {
		return ErrNameRequired
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsZero() {
		return ErrZeroAmount
	}

	if t.Type == TransactionTypeDebit && t.Amount.IsPositive() {
		return ErrAmountSignMismatch
	}
	if t.Type == TransactionTypeCredit && t.Amount.IsNegative() {
		return ErrAmountSignMismatch
	}

	if t.Category == "" {
		return ErrCategoryRequired
	}

	if t.Date.IsZero() {
		return ErrDateRequired
	}

	return nil
}

// IsDebit returns true for expense transactions
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true for income transactions
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit:
		return true
	default:
		return false
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// SeedTransactions returns the canned demo dataset loaded into the in-memory
// store at startup. Records are in source order; the store preserves it.
func SeedTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Name: "Starbucks", Amount: amount("-5.67"), Category: "Food & Dining", Date: date(2024, time.January, 15), Type: TransactionTypeDebit},
		{ID: "2", Name: "Salary Deposit", Amount: amount("5200.00"), Category: "Income", Date: date(2024, time.January, 1), Type: TransactionTypeCredit},
		{ID: "3", Name: "Uber", Amount: amount("-23.45"), Category: "Transportation", Date: date(2024, time.January, 14), Type: TransactionTypeDebit},
		{ID: "4", Name: "Amazon", Amount: amount("-89.99"), Category: "Shopping", Date: date(2024, time.January, 13), Type: TransactionTypeDebit},
		{ID: "5", Name: "Netflix", Amount: amount("-15.99"), Category: "Entertainment", Date: date(2024, time.January, 12), Type: TransactionTypeDebit},
		{ID: "6", Name: "Grocery Store", Amount: amount("-156.78"), Category: "Food & Dining", Date: date(2024, time.January, 11), Type: TransactionTypeDebit},
		{ID: "7", Name: "Gas Station", Amount: amount("-45.67"), Category: "Transportation", Date: date(2024, time.January, 10), Type: TransactionTypeDebit},
		{ID: "8", Name: "Restaurant", Amount: amount("-78.90"), Category: "Food & Dining", Date: date(2024, time.January, 9), Type: TransactionTypeDebit},
		{ID: "9", Name: "Target", Amount: amount("-234.56"), Category: "Shopping", Date: date(2024, time.January, 8), Type: TransactionTypeDebit},
		{ID: "10", Name: "Spotify", Amount: amount("-9.99"), Category: "Entertainment", Date: date(2024, time.January, 7), Type: TransactionTypeDebit},
	}
}
