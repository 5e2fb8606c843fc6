package models

import "github.com/shopspring/decimal"

// DefaultTopCategory is reported when the input contains no debit transactions.
const DefaultTopCategory = "Other"

// Summary contains aggregated spending data derived from a transaction set.
// It is recomputed per request and never stored.
type Summary struct {
	TotalSpent       decimal.Decimal
	TotalIncome      decimal.Decimal
	SavingsRate      decimal.Decimal
	TopCategory      string
	CategorySpending map[string]decimal.Decimal

	// CategoryOrder records distinct debit categories in first-seen input
	// order. It drives the topCategory tie-break and deterministic prompt
	// rendering; it is not part of the wire format.
	CategoryOrder []string
}

// EmptySummary returns the all-zero summary produced for an empty
// transaction set.
func EmptySummary() Summary {
	return Summary{
		TotalSpent:       decimal.Zero,
		TotalIncome:      decimal.Zero,
		SavingsRate:      decimal.Zero,
		TopCategory:      DefaultTopCategory,
		CategorySpending: map[string]decimal.Decimal{},
		CategoryOrder:    []string{},
	}
}
