package database

import (
	"fmt"
	"sync/atomic"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

// DB wraps the gorm handle for the in-memory transaction store. The store is
// seeded at startup and lives for the lifetime of the process; nothing is
// persisted across restarts.
type DB struct {
	*gorm.DB
}

var dbSeq atomic.Int64

// New opens a private in-memory SQLite database and runs migrations. Each
// call gets its own database; connections from one pool share it through the
// named shared cache.
func New() (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	dsn := fmt.Sprintf("file:transactions_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// A shared-cache in-memory SQLite database is dropped when the last
	// connection closes, so keep at least one open at all times.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	wrapped := &DB{DB: db}
	if err := wrapped.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return wrapped, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Transaction{},
	)
}

// Seed loads transactions into the store in slice order. The autoincrement
// sequence column records that order so listings can reproduce it.
func (db *DB) Seed(transactions []models.Transaction) error {
	for i := range transactions {
		txn := transactions[i]
		if err := txn.Validate(); err != nil {
			return fmt.Errorf("seed record %s is invalid: %w", txn.ID, err)
		}
		if err := db.DB.Create(&txn).Error; err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", txn.ID, err)
		}
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
