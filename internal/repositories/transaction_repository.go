package repositories

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// GetAll retrieves all transactions in seed order.
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("seq").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByCategory retrieves transactions whose category matches
// case-insensitively, preserving seed order.
func (r *transactionRepository) GetByCategory(category string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("LOWER(category) = ?", strings.ToLower(category)).
		Order("seq").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by category: %w", err)
	}
	return transactions, nil
}

// GetByDateRange retrieves transactions within [startDate, end of endDate's
// day]. An inverted range simply matches nothing.
func (r *transactionRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error) {
	endInclusive := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), endDate.Location())

	var transactions []models.Transaction
	if err := r.db.Where("date BETWEEN ? AND ?", startDate, endInclusive).
		Order("seq").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// Count returns the total number of stored transactions.
func (r *transactionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}
