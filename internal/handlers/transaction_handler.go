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

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	analysis        services.AnalysisServiceInterface
	metrics         services.MetricsRecorderInterface
	logger          zerolog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	analysis services.AnalysisServiceInterface,
	metrics services.MetricsRecorderInterface,
	logger zerolog.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		analysis:        analysis,
		metrics:         metrics,
		logger:          logger.With().Str("component", "transaction_handler").Logger(),
	}
}

// List returns all transactions with a spending summary.
func (h *TransactionHandler) List(c echo.Context) error {
	h.metrics.RecordTransactionQuery("list")

	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, h.logger, err)
	}

	summary := h.analysis.Analyze(transactions)

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions:      dto.FromTransactions(transactions),
		Summary:           dto.FromSummary(summary, false),
		TotalTransactions: len(transactions),
	})
}

// ByCategory returns transactions matching a category, case-insensitively.
// An unknown category yields an empty list rather than an error.
func (h *TransactionHandler) ByCategory(c echo.Context) error {
	h.metrics.RecordTransactionQuery("by_category")

	category := c.Param("category")
	if category == "" {
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails("category is required"))
	}

	transactions, err := h.transactionRepo.GetByCategory(category)
	if err != nil {
		return SendSystemError(c, h.logger, err)
	}

	summary := h.analysis.Analyze(transactions)

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions:      dto.FromTransactions(transactions),
		Summary:           dto.FromSummary(summary, false),
		Category:          category,
		TotalTransactions: len(transactions),
	})
}

// ByDateRange returns transactions between start_date and end_date inclusive.
// Both parameters are required; an inverted range yields an empty list.
func (h *TransactionHandler) ByDateRange(c echo.Context) error {
	h.metrics.RecordTransactionQuery("by_date_range")

	var query dto.DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidDate,
			errors.WithDetails("dates must use the YYYY-MM-DD format"))
	}
	if err := c.Validate(&query); err != nil {
		if hasRequiredFailure(err) {
			return SendError(c, errors.ValidationRequiredField,
				errors.WithDetails("start_date and end_date are required"))
		}
		return SendError(c, errors.ValidationInvalidDate,
			errors.WithDetails("dates must use the YYYY-MM-DD format"))
	}

	// Formats are validated above, so parsing cannot fail.
	startDate, _ := time.Parse(dateParamLayout, query.StartDate)
	endDate, _ := time.Parse(dateParamLayout, query.EndDate)

	transactions, err := h.transactionRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return SendSystemError(c, h.logger, err)
	}

	summary := h.analysis.Analyze(transactions)

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: dto.FromTransactions(transactions),
		Summary:      dto.FromSummary(summary, false),
		DateRange: &dto.DateRange{
			StartDate: query.StartDate,
			EndDate:   query.EndDate,
		},
		TotalTransactions: len(transactions),
	})
}

// Summary returns the spending summary with a per-category breakdown.
func (h *TransactionHandler) Summary(c echo.Context) error {
	h.metrics.RecordTransactionQuery("summary")

	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, h.logger, err)
	}

	summary := h.analysis.Analyze(transactions)

	return c.JSON(http.StatusOK, dto.SummaryResponse{
		Summary:           dto.FromSummary(summary, false),
		CategoryBreakdown: dto.CategoryBreakdown(summary),
		TotalTransactions: len(transactions),
	})
}
