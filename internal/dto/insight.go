package dto

import (
	"time"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/services"
)

// InsightResponse is returned by the insight endpoints. Analysis always
// includes the per-category breakdown.
type InsightResponse struct {
	Insights    models.InsightPayload `json:"insights"`
	Analysis    Summary               `json:"analysis"`
	Category    string                `json:"category,omitempty"`
	Tier        string                `json:"tier"`
	GeneratedAt string                `json:"generated_at"`
}

// NewInsightResponse assembles the insight endpoint response.
func NewInsightResponse(result services.InsightResult, summary models.Summary, category string, generatedAt time.Time) InsightResponse {
	return InsightResponse{
		Insights:    result.Payload,
		Analysis:    FromSummary(summary, true),
		Category:    category,
		Tier:        string(result.Tier),
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
	}
}
