package services

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

// Categories available to the demo generator. Income is handled separately
// so generated sets keep a plausible debit/credit mix.
var generatorCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Health",
}

var merchantsByCategory = map[string][]string{
	"Food & Dining":     {"Starbucks", "Chipotle", "Whole Foods", "Local Diner", "Pizza Palace"},
	"Transportation":    {"Uber", "Lyft", "Shell", "Metro Transit", "Chevron"},
	"Shopping":          {"Amazon", "Target", "Best Buy", "IKEA", "Nordstrom"},
	"Entertainment":     {"Netflix", "Spotify", "AMC Theaters", "Steam", "Disney+"},
	"Bills & Utilities": {"AT&T", "Comcast", "City Power & Light", "Verizon"},
	"Health":            {"CVS Pharmacy", "Walgreens", "City Gym", "Dental Care"},
}

// transactionGenerator implements TransactionGeneratorInterface
type transactionGenerator struct {
	faker *gofakeit.Faker
}

// NewTransactionGenerator creates a generator seeded from the current time.
func NewTransactionGenerator() TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewSeededTransactionGenerator creates a generator with a fixed seed, used
// in tests for reproducible output.
func NewSeededTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(seed),
	}
}

// Generate produces count debit transactions spread over the last 30 days.
func (g *transactionGenerator) Generate(count int) []models.Transaction {
	if count <= 0 {
		return nil
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		category := generatorCategories[g.faker.Number(0, len(generatorCategories)-1)]
		merchants := merchantsByCategory[category]
		merchant := merchants[g.faker.Number(0, len(merchants)-1)]

		cents := g.faker.Number(199, 25000)
		amount := decimal.NewFromInt(int64(cents)).Div(oneHundred).Neg()

		daysAgo := g.faker.Number(0, 29)

		transactions = append(transactions, models.Transaction{
			ID:       fmt.Sprintf("demo-%s", uuid.NewString()),
			Name:     merchant,
			Amount:   amount,
			Category: category,
			Date:     now.AddDate(0, 0, -daysAgo),
			Type:     models.TransactionTypeDebit,
		})
	}

	return transactions
}
