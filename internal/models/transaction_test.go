package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDebit() Transaction {
	return Transaction{
		ID:       "t-1",
		Name:     "Coffee Shop",
		Amount:   decimal.RequireFromString("-4.50"),
		Category: "Food & Dining",
		Date:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Type:     TransactionTypeDebit,
	}
}

func TestTransactionValidate_Valid(t *testing.T) {
	txn := validDebit()
	assert.NoError(t, txn.Validate())
	assert.True(t, txn.IsDebit())
	assert.False(t, txn.IsCredit())
}

func TestTransactionValidate_TypeSignAgreement(t *testing.T) {
	txn := validDebit()
	txn.Amount = decimal.RequireFromString("4.50")
	assert.ErrorIs(t, txn.Validate(), ErrAmountSignMismatch)

	txn.Type = TransactionTypeCredit
	assert.NoError(t, txn.Validate())

	txn.Amount = decimal.RequireFromString("-4.50")
	assert.ErrorIs(t, txn.Validate(), ErrAmountSignMismatch)
}

func TestTransactionValidate_RejectsMalformed(t *testing.T) {
	txn := validDebit()
	txn.Type = "transfer"
	assert.ErrorIs(t, txn.Validate(), ErrInvalidTransactionType)

	txn = validDebit()
	txn.Amount = decimal.Zero
	assert.ErrorIs(t, txn.Validate(), ErrZeroAmount)

	txn = validDebit()
	txn.Category = ""
	assert.ErrorIs(t, txn.Validate(), ErrCategoryRequired)

	txn = validDebit()
	txn.Date = time.Time{}
	assert.ErrorIs(t, txn.Validate(), ErrDateRequired)

	txn = validDebit()
	txn.Name = ""
	assert.ErrorIs(t, txn.Validate(), ErrNameRequired)
}

func TestSeedTransactions(t *testing.T) {
	seed := SeedTransactions()
	require.Len(t, seed, 10)

	for _, txn := range seed {
		assert.NoError(t, txn.Validate(), "seed record %s", txn.ID)
	}

	// One credit (salary), nine debits summing to 661.00.
	debitTotal := decimal.Zero
	creditCount := 0
	for _, txn := range seed {
		if txn.IsCredit() {
			creditCount++
			continue
		}
		debitTotal = debitTotal.Add(txn.Amount.Abs())
	}
	assert.Equal(t, 1, creditCount)
	assert.True(t, debitTotal.Equal(decimal.RequireFromString("661.00")),
		"debit total %s", debitTotal)
}
