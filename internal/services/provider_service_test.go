package services

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

// fakeTransactionRepo is a hand-written in-memory repository double.
type fakeTransactionRepo struct {
	transactions []models.Transaction
}

func (f *fakeTransactionRepo) GetAll() ([]models.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepo) GetByCategory(category string) ([]models.Transaction, error) {
	var matched []models.Transaction
	for _, txn := range f.transactions {
		if strings.EqualFold(txn.Category, category) {
			matched = append(matched, txn)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepo) GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error) {
	endInclusive := endDate.AddDate(0, 0, 1)
	var matched []models.Transaction
	for _, txn := range f.transactions {
		if !txn.Date.Before(startDate) && txn.Date.Before(endInclusive) {
			matched = append(matched, txn)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepo) Count() (int64, error) {
	return int64(len(f.transactions)), nil
}

func (f *fakeTransactionRepo) CreateBatch(transactions []models.Transaction) error {
	f.transactions = append(f.transactions, transactions...)
	return nil
}

type BankProviderServiceTestSuite struct {
	suite.Suite
	repo    *fakeTransactionRepo
	service BankProviderServiceInterface
}

func (suite *BankProviderServiceTestSuite) SetupTest() {
	suite.repo = &fakeTransactionRepo{transactions: models.SeedTransactions()}
	suite.service = NewBankProviderService(suite.repo)
}

func (suite *BankProviderServiceTestSuite) TestStatus() {
	status := suite.service.Status()

	suite.True(status.Connected)
	suite.Equal("Demo User", status.UserData.Name)
	suite.Require().Len(status.UserData.Accounts, 1)
	suite.Equal("demo-checking", status.UserData.Accounts[0].ID)
	suite.Nil(status.UserData.Accounts[0].Balances)
}

func (suite *BankProviderServiceTestSuite) TestConnectSandbox() {
	conn, err := suite.service.Connect(true)

	suite.NoError(err)
	suite.True(conn.Success)
	suite.Equal("demo-access-token", conn.AccessToken)
}

func (suite *BankProviderServiceTestSuite) TestConnectRealModeRejected() {
	_, err := suite.service.Connect(false)
	suite.ErrorIs(err, ErrSandboxOnly)
}

func (suite *BankProviderServiceTestSuite) TestAccounts() {
	accounts := suite.service.Accounts()

	suite.Require().Len(accounts, 2)
	suite.Equal("demo-checking", accounts[0].ID)
	suite.Equal("demo-savings", accounts[1].ID)
	suite.Require().NotNil(accounts[1].Balances)
	suite.True(accounts[1].Balances.Available.Equal(decimal.RequireFromString("15000.00")))
	suite.Nil(accounts[1].Balances.Limit)
}

func (suite *BankProviderServiceTestSuite) TestTransactionsWithoutRange() {
	transactions, err := suite.service.Transactions(nil, nil)

	suite.NoError(err)
	suite.Len(transactions, 10)
}

func (suite *BankProviderServiceTestSuite) TestTransactionsWithRange() {
	start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC)

	transactions, err := suite.service.Transactions(&start, &end)

	suite.NoError(err)
	suite.Len(transactions, 3)
}

func (suite *BankProviderServiceTestSuite) TestTransactionsSingleBoundIgnored() {
	start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	transactions, err := suite.service.Transactions(&start, nil)

	suite.NoError(err)
	suite.Len(transactions, 10)
}

func TestBankProviderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankProviderServiceTestSuite))
}
