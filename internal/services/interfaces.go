package services

import (
	"context"
	"time"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

// AnalysisServiceInterface computes spending summaries from transaction sets.
type AnalysisServiceInterface interface {
	Analyze(transactions []models.Transaction) models.Summary
}

// InsightTier identifies which path produced an insight payload.
type InsightTier string

const (
	InsightTierModel   InsightTier = "model"
	InsightTierLocal   InsightTier = "local"
	InsightTierGeneric InsightTier = "generic"
)

// InsightResult bundles an insight payload with the tier that produced it.
type InsightResult struct {
	Payload models.InsightPayload
	Tier    InsightTier
}

// InsightServiceInterface produces financial advice for a spending summary.
// Generation never fails: if the advisory model is unreachable or returns
// unusable content the service degrades through local and generic fallbacks.
type InsightServiceInterface interface {
	GenerateInsights(ctx context.Context, summary models.Summary) InsightResult
}

// BankProviderServiceInterface simulates the external bank-data aggregator.
type BankProviderServiceInterface interface {
	Status() models.ProviderStatus
	Connect(useSandbox bool) (models.ProviderConnection, error)
	Accounts() []models.BankAccount
	Transactions(startDate, endDate *time.Time) ([]models.Transaction, error)
}

// TransactionGeneratorInterface produces randomized demo transactions used to
// pad the seed dataset when configured.
type TransactionGeneratorInterface interface {
	Generate(count int) []models.Transaction
}

// MetricsRecorderInterface abstracts metric recording so services can be
// tested without a Prometheus registry.
type MetricsRecorderInterface interface {
	RecordInsightGenerated(tier InsightTier)
	RecordAdvisorCallDuration(duration time.Duration, success bool)
	RecordTransactionQuery(operation string)
}
