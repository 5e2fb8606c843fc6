package services

import (
	"github.com/shopspring/decimal"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// analysisService implements AnalysisServiceInterface
type analysisService struct{}

// NewAnalysisService creates a new spending analysis service
func NewAnalysisService() AnalysisServiceInterface {
	return &analysisService{}
}

// Analyze computes the spending summary for a transaction set in a single
// pass. Debits accumulate as absolute values; categories are tracked in
// first-seen order so the top-category tie-break is stable for a given input
// ordering.
func (s *analysisService) Analyze(transactions []models.Transaction) models.Summary {
	summary := models.EmptySummary()

	for _, txn := range transactions {
		if txn.IsCredit() {
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			continue
		}

		amount := txn.Amount.Abs()
		summary.TotalSpent = summary.TotalSpent.Add(amount)

		if _, seen := summary.CategorySpending[txn.Category]; !seen {
			summary.CategoryOrder = append(summary.CategoryOrder, txn.Category)
		}
		summary.CategorySpending[txn.Category] = summary.CategorySpending[txn.Category].Add(amount)
	}

	if summary.TotalIncome.IsPositive() {
		summary.SavingsRate = summary.TotalIncome.Sub(summary.TotalSpent).
			Div(summary.TotalIncome).
			Mul(oneHundred)
	}

	summary.TopCategory = topCategory(summary)

	return summary
}

// topCategory picks the highest-spend category; ties go to the category seen
// first in the input. Defaults to "Other" when there are no debits.
func topCategory(summary models.Summary) string {
	top := models.DefaultTopCategory
	best := decimal.Zero

	for _, category := range summary.CategoryOrder {
		amount := summary.CategorySpending[category]
		if amount.GreaterThan(best) {
			best = amount
			top = category
		}
	}

	return top
}
