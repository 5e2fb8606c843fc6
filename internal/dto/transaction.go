package dto

import (
	"github.com/shopspring/decimal"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

const dateLayout = "2006-01-02"

// Transaction is the wire representation of a transaction. Amounts are plain
// JSON numbers and dates are calendar days.
type Transaction struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
}

// Summary is the wire representation of a spending summary.
type Summary struct {
	TotalSpent       float64            `json:"totalSpent"`
	TotalIncome      float64            `json:"totalIncome"`
	SavingsRate      float64            `json:"savingsRate"`
	TopCategory      string             `json:"topCategory"`
	CategorySpending map[string]float64 `json:"categorySpending,omitempty"`
}

// TransactionListResponse is returned by transaction listing endpoints.
type TransactionListResponse struct {
	Transactions      []Transaction `json:"transactions"`
	Summary           Summary       `json:"summary"`
	Category          string        `json:"category,omitempty"`
	DateRange         *DateRange    `json:"date_range,omitempty"`
	TotalTransactions int           `json:"total_transactions"`
}

// DateRangeQuery carries the date-range filter bounds. Both dates are
// required calendar days.
type DateRangeQuery struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
}

// DateRange echoes the requested date bounds back to the caller.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SummaryResponse is returned by the spending summary endpoint.
type SummaryResponse struct {
	Summary           Summary            `json:"summary"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	TotalTransactions int                `json:"total_transactions"`
}

// FromTransaction converts a stored transaction to its wire shape.
func FromTransaction(txn models.Transaction) Transaction {
	return Transaction{
		ID:       txn.ID,
		Name:     txn.Name,
		Amount:   txn.Amount.InexactFloat64(),
		Category: txn.Category,
		Date:     txn.Date.Format(dateLayout),
		Type:     txn.Type,
	}
}

// FromTransactions converts a transaction slice, preserving order. The result
// is never nil so empty lists serialize as [].
func FromTransactions(transactions []models.Transaction) []Transaction {
	out := make([]Transaction, 0, len(transactions))
	for _, txn := range transactions {
		out = append(out, FromTransaction(txn))
	}
	return out
}

// FromSummary converts a summary to its wire shape. Category spending is
// included only when includeCategories is set; the flat summary block on
// listing endpoints omits it.
func FromSummary(summary models.Summary, includeCategories bool) Summary {
	out := Summary{
		TotalSpent:  summary.TotalSpent.InexactFloat64(),
		TotalIncome: summary.TotalIncome.InexactFloat64(),
		SavingsRate: summary.SavingsRate.InexactFloat64(),
		TopCategory: summary.TopCategory,
	}

	if includeCategories {
		out.CategorySpending = categoryMap(summary.CategorySpending)
	}

	return out
}

// CategoryBreakdown converts the per-category totals to wire numbers.
func CategoryBreakdown(summary models.Summary) map[string]float64 {
	return categoryMap(summary.CategorySpending)
}

func categoryMap(spending map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(spending))
	for category, amount := range spending {
		out[category] = amount.InexactFloat64()
	}
	return out
}
