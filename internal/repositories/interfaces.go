package repositories

import (
	"time"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

// TransactionRepositoryInterface defines read access to the transaction store.
// The demo dataset is seeded once at startup, so there are no write methods
// beyond CreateBatch used during seeding.
type TransactionRepositoryInterface interface {
	GetAll() ([]models.Transaction, error)
	GetByCategory(category string) ([]models.Transaction, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error)
	Count() (int64, error)
	CreateBatch(transactions []models.Transaction) error
}
