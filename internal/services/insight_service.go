package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/advisor"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

// insightService implements InsightServiceInterface
type insightService struct {
	advisor advisor.Client
	metrics MetricsRecorderInterface
	logger  zerolog.Logger
}

// NewInsightService creates an insight service backed by the given advisory
// client.
func NewInsightService(client advisor.Client, metrics MetricsRecorderInterface, logger zerolog.Logger) InsightServiceInterface {
	return &insightService{
		advisor: client,
		metrics: metrics,
		logger:  logger.With().Str("component", "insight_service").Logger(),
	}
}

// GenerateInsights produces advice for a spending summary and never fails.
// A model payload that parses and validates is returned verbatim. A call that
// succeeds with unusable content degrades to locally computed advice; a call
// that cannot be made at all degrades to a generic payload.
func (s *insightService) GenerateInsights(ctx context.Context, summary models.Summary) InsightResult {
	raw, err := s.callAdvisor(ctx, summary)
	if err != nil {
		s.logger.Error().Err(err).Str("tier", string(InsightTierGeneric)).
			Msg("advisory call failed, serving generic advice")
		s.metrics.RecordInsightGenerated(InsightTierGeneric)
		return InsightResult{Payload: genericPayload(), Tier: InsightTierGeneric}
	}

	if payload, ok := s.parsePayload(raw); ok {
		s.metrics.RecordInsightGenerated(InsightTierModel)
		return InsightResult{Payload: payload, Tier: InsightTierModel}
	}

	s.logger.Warn().Str("tier", string(InsightTierLocal)).
		Msg("advisory model returned unusable content, serving local advice")
	s.metrics.RecordInsightGenerated(InsightTierLocal)
	return InsightResult{Payload: localPayload(summary), Tier: InsightTierLocal}
}

func (s *insightService) callAdvisor(ctx context.Context, summary models.Summary) (string, error) {
	if !s.advisor.Available() {
		return "", advisor.ErrNotConfigured
	}

	start := time.Now()
	raw, err := s.advisor.GenerateAdvice(ctx, advisor.BuildPrompt(summary))
	s.metrics.RecordAdvisorCallDuration(time.Since(start), err == nil)

	return raw, err
}

func (s *insightService) parsePayload(raw string) (models.InsightPayload, bool) {
	var payload models.InsightPayload
	if err := json.Unmarshal([]byte(advisor.CleanModelJSON(raw)), &payload); err != nil {
		s.logger.Warn().Err(err).Msg("advisory payload is not valid JSON")
		return models.InsightPayload{}, false
	}

	if err := payload.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("advisory payload failed validation")
		return models.InsightPayload{}, false
	}

	return payload, true
}

// localPayload builds deterministic advice from the summary itself. All
// arithmetic is guarded so a zero-spend summary still yields a valid payload.
func localPayload(summary models.Summary) models.InsightPayload {
	monthlySavings := summary.TotalSpent.Mul(decimal.RequireFromString("0.1")).Round(0)
	savingsRate := summary.SavingsRate.StringFixed(1)

	topShare := decimal.Zero
	if !summary.TotalSpent.IsZero() {
		topShare = summary.CategorySpending[summary.TopCategory].
			Div(summary.TotalSpent).
			Mul(oneHundred)
	}

	rateAssessment := "below recommended"
	if summary.SavingsRate.GreaterThan(decimal.NewFromInt(20)) {
		rateAssessment = "good"
	}

	return models.InsightPayload{
		Advice: []models.AdviceItem{
			{
				Type:        models.AdviceTypeSavings,
				Title:       "Increase Your Savings",
				Description: fmt.Sprintf("You can save an additional $%s/month by reducing %s expenses by 10%%.", monthlySavings, summary.TopCategory),
				Icon:        models.AdviceIconTrending,
				Priority:    models.AdvicePriorityHigh,
			},
			{
				Type:        models.AdviceTypeSpending,
				Title:       "Monitor Subscription Costs",
				Description: "Review your recurring subscriptions and consider canceling unused services.",
				Icon:        models.AdviceIconAlert,
				Priority:    models.AdvicePriorityMedium,
			},
			{
				Type:        models.AdviceTypeInvestment,
				Title:       "Investment Opportunity",
				Description: fmt.Sprintf("With your current savings rate of %s%%, consider investing in a diversified portfolio.", savingsRate),
				Icon:        models.AdviceIconTarget,
				Priority:    models.AdvicePriorityLow,
			},
		},
		Trends: []string{
			fmt.Sprintf("Your %s spending represents %s%% of total expenses", summary.TopCategory, topShare.StringFixed(1)),
			fmt.Sprintf("Your savings rate of %s%% is %s for financial health", savingsRate, rateAssessment),
			"Consider setting up automatic savings transfers to improve your savings rate",
		},
		Goals: []string{
			"Emergency fund: 75% complete",
			"Vacation savings: 40% complete",
			"Investment portfolio: 60% complete",
		},
	}
}

// genericPayload is the last-resort response when the advisory service cannot
// be reached at all. It still satisfies the payload shape.
func genericPayload() models.InsightPayload {
	return models.InsightPayload{
		Advice: []models.AdviceItem{
			{
				Type:        models.AdviceTypeSavings,
				Title:       "Focus on Savings",
				Description: "Consider increasing your savings rate to 20% of income for better financial security.",
				Icon:        models.AdviceIconTrending,
				Priority:    models.AdvicePriorityHigh,
			},
		},
		Trends: []string{
			"Unable to generate personalized insights at this time",
		},
		Goals: []string{
			"Emergency fund: 75% complete",
		},
	}
}
