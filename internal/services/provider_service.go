package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/repositories"
)

const sandboxAccessToken = "demo-access-token"

// ErrSandboxOnly signals that a real (non-sandbox) bank link was requested.
var ErrSandboxOnly = errors.New("real bank integration requires additional setup")

// bankProviderService simulates a bank-data aggregator in sandbox mode. The
// demo user is always connected and account data is canned; transactions come
// from the shared store.
type bankProviderService struct {
	repo repositories.TransactionRepositoryInterface
}

// NewBankProviderService creates a sandbox bank-data provider service.
func NewBankProviderService(repo repositories.TransactionRepositoryInterface) BankProviderServiceInterface {
	return &bankProviderService{
		repo: repo,
	}
}

// Status reports the simulated connection state.
func (s *bankProviderService) Status() models.ProviderStatus {
	return models.ProviderStatus{
		Connected: true,
		UserData: models.ProviderUser{
			Name: "Demo User",
			Accounts: []models.BankAccount{
				{
					ID:      "demo-checking",
					Name:    "Demo Checking Account",
					Type:    "depository",
					Subtype: "checking",
					Mask:    "1234",
				},
			},
		},
	}
}

// Connect simulates linking a bank account. Only sandbox mode is supported.
func (s *bankProviderService) Connect(useSandbox bool) (models.ProviderConnection, error) {
	if !useSandbox {
		return models.ProviderConnection{}, ErrSandboxOnly
	}

	return models.ProviderConnection{
		Success:     true,
		Message:     "Successfully connected to bank account (sandbox mode)",
		AccessToken: sandboxAccessToken,
	}, nil
}

// Accounts returns the demo account list with balances.
func (s *bankProviderService) Accounts() []models.BankAccount {
	checking := decimal.RequireFromString("5000.00")
	savings := decimal.RequireFromString("15000.00")

	return []models.BankAccount{
		{
			ID:      "demo-checking",
			Name:    "Demo Checking Account",
			Type:    "depository",
			Subtype: "checking",
			Mask:    "1234",
			Balances: &models.BankBalances{
				Available: checking,
				Current:   checking,
			},
		},
		{
			ID:      "demo-savings",
			Name:    "Demo Savings Account",
			Type:    "depository",
			Subtype: "savings",
			Mask:    "5678",
			Balances: &models.BankBalances{
				Available: savings,
				Current:   savings,
			},
		},
	}
}

// Transactions returns stored transactions, optionally filtered to a date
// range. Both bounds must be supplied to filter; a single bound is ignored,
// matching how the provider sandbox behaves.
func (s *bankProviderService) Transactions(startDate, endDate *time.Time) ([]models.Transaction, error) {
	if startDate != nil && endDate != nil {
		return s.repo.GetByDateRange(*startDate, *endDate)
	}
	return s.repo.GetAll()
}
