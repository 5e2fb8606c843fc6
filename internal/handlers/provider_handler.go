package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/dto"
	apperrors "github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/errors"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/services"
)

const demoRequestID = "demo-request-id"

// ProviderHandler exposes the simulated bank-data provider endpoints.
type ProviderHandler struct {
	provider services.BankProviderServiceInterface
	logger   zerolog.Logger
}

// NewProviderHandler creates a new bank provider handler
func NewProviderHandler(provider services.BankProviderServiceInterface, logger zerolog.Logger) *ProviderHandler {
	return &ProviderHandler{
		provider: provider,
		logger:   logger.With().Str("component", "provider_handler").Logger(),
	}
}

// Status reports the simulated bank connection state.
func (h *ProviderHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.FromProviderStatus(h.provider.Status()))
}

// Connect simulates linking a bank account. Only sandbox mode succeeds.
func (h *ProviderHandler) Connect(c echo.Context) error {
	var req dto.ConnectRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("request body must be valid JSON"))
	}

	conn, err := h.provider.Connect(req.UseSandbox)
	if err != nil {
		if errors.Is(err, services.ErrSandboxOnly) {
			return SendError(c, apperrors.ProviderSandboxOnly)
		}
		return SendSystemError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.FromProviderConnection(conn))
}

// Accounts returns the demo account list with balances.
func (h *ProviderHandler) Accounts(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.BankAccountsResponse{
		Accounts: dto.FromBankAccounts(h.provider.Accounts()),
	})
}

// Transactions returns stored transactions, filtered when both date bounds
// are supplied.
func (h *ProviderHandler) Transactions(c echo.Context) error {
	var startPtr, endPtr *time.Time

	startDate, startPresent, startErr := parseDateParam(c, "start_date")
	endDate, endPresent, endErr := parseDateParam(c, "end_date")
	if startErr != nil || endErr != nil {
		return SendError(c, apperrors.ValidationInvalidDate,
			apperrors.WithDetails("dates must use the YYYY-MM-DD format"))
	}
	if startPresent && endPresent {
		startPtr = &startDate
		endPtr = &endDate
	}

	transactions, err := h.provider.Transactions(startPtr, endPtr)
	if err != nil {
		return SendSystemError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.BankTransactionsResponse{
		Transactions:      dto.FromTransactions(transactions),
		TotalTransactions: len(transactions),
		RequestID:         demoRequestID,
	})
}
