package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesValidDebits(t *testing.T) {
	generator := NewSeededTransactionGenerator(42)
	transactions := generator.Generate(50)

	require.Len(t, transactions, 50)

	cutoff := time.Now().UTC().AddDate(0, 0, -31)
	seen := map[string]bool{}
	for _, txn := range transactions {
		assert.NoError(t, txn.Validate(), "generated record %s", txn.ID)
		assert.True(t, txn.IsDebit())
		assert.False(t, seen[txn.ID], "duplicate ID %s", txn.ID)
		assert.True(t, txn.Date.After(cutoff), "date %s too old", txn.Date)
		seen[txn.ID] = true
	}
}

func TestGenerateMerchantMatchesCategory(t *testing.T) {
	generator := NewSeededTransactionGenerator(7)

	for _, txn := range generator.Generate(30) {
		merchants, ok := merchantsByCategory[txn.Category]
		require.True(t, ok, "unknown category %s", txn.Category)
		assert.Contains(t, merchants, txn.Name)
	}
}

func TestGenerateNonPositiveCount(t *testing.T) {
	generator := NewSeededTransactionGenerator(1)
	assert.Nil(t, generator.Generate(0))
	assert.Nil(t, generator.Generate(-3))
}

func TestGenerateIsReproducibleForSameSeed(t *testing.T) {
	first := NewSeededTransactionGenerator(99).Generate(10)
	second := NewSeededTransactionGenerator(99).Generate(10)

	require.Len(t, second, 10)
	for i := range first {
		// IDs are random UUIDs; everything else follows the seed.
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Category, second[i].Category)
		assert.True(t, first[i].Amount.Equal(second[i].Amount))
	}
}
