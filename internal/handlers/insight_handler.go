package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/dto"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/errors"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/repositories"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/services"
)

// InsightHandler handles insight generation HTTP requests
type InsightHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	analysis        services.AnalysisServiceInterface
	insights        services.InsightServiceInterface
	logger          zerolog.Logger
	now             func() time.Time
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	analysis services.AnalysisServiceInterface,
	insights services.InsightServiceInterface,
	logger zerolog.Logger,
) *InsightHandler {
	return &InsightHandler{
		transactionRepo: transactionRepo,
		analysis:        analysis,
		insights:        insights,
		logger:          logger.With().Str("component", "insight_handler").Logger(),
		now:             time.Now,
	}
}

// Generate returns financial advice for the full transaction set.
func (h *InsightHandler) Generate(c echo.Context) error {
	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, h.logger, err)
	}

	summary := h.analysis.Analyze(transactions)
	result := h.insights.GenerateInsights(c.Request().Context(), summary)

	return c.JSON(http.StatusOK, dto.NewInsightResponse(result, summary, "", h.now()))
}

// GenerateForCategory returns advice scoped to a single spending category.
// A category with no transactions is a 404.
func (h *InsightHandler) GenerateForCategory(c echo.Context) error {
	category := c.Param("category")
	if category == "" {
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails("category is required"))
	}

	transactions, err := h.transactionRepo.GetByCategory(category)
	if err != nil {
		return SendSystemError(c, h.logger, err)
	}

	if len(transactions) == 0 {
		return SendError(c, errors.CategoryNoTransactions)
	}

	summary := h.analysis.Analyze(transactions)
	result := h.insights.GenerateInsights(c.Request().Context(), summary)

	return c.JSON(http.StatusOK, dto.NewInsightResponse(result, summary, category, h.now()))
}
