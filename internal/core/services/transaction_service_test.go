package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/paisatrack/pft_backend/internal/apperrors"
	"github.com/paisatrack/pft_backend/internal/core/domain"
	portssvc "github.com/paisatrack/pft_backend/internal/core/ports/services"
	"github.com/paisatrack/pft_backend/internal/core/services"
	"github.com/paisatrack/pft_backend/internal/utils/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsForUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsInRange(ctx context.Context, userID string, startNanos, endNanos int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, startNanos, endNanos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, userID string, data domain.TransactionData, now time.Time) (int64, error) {
	args := m.Called(ctx, userID, data, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, userID string, transactionID int64, data domain.TransactionData, now time.Time) error {
	args := m.Called(ctx, userID, transactionID, data, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID int64) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	userID   string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func validTransactionData() domain.TransactionData {
	return domain.TransactionData{
		Date:            time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC).UnixNano(),
		Amount:          150000,
		TransactionType: domain.Expense,
		Category:        domain.CategoryFood,
		Description:     "Groceries",
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	data := validTransactionData()

	suite.mockRepo.On("CreateTransaction", ctx, suite.userID, data, mock.AnythingOfType("time.Time")).Return(int64(42), nil).Once()

	id, err := suite.service.CreateTransaction(ctx, suite.userID, data)

	suite.Require().NoError(err)
	suite.Equal(int64(42), id)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	data := validTransactionData()
	data.Amount = 0

	_, err := suite.service.CreateTransaction(ctx, suite.userID, data)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsUnknownType() {
	ctx := context.Background()
	data := validTransactionData()
	data.TransactionType = "transfer"

	_, err := suite.service.CreateTransaction(ctx, suite.userID, data)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsUnknownCategory() {
	ctx := context.Background()
	data := validTransactionData()
	data.Category = "groceries"

	_, err := suite.service.CreateTransaction(ctx, suite.userID, data)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNegativeDate() {
	ctx := context.Background()
	data := validTransactionData()
	data.Date = -1

	_, err := suite.service.CreateTransaction(ctx, suite.userID, data)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidDate)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransaction(ctx, suite.userID, 99)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FiltersAndSorts() {
	ctx := context.Background()
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).UnixNano()
	jan2 := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC).UnixNano()

	stored := []domain.Transaction{
		{TransactionID: 1, Date: jan1, Amount: 100, TransactionType: domain.Income, Category: domain.CategorySalary},
		{TransactionID: 2, Date: jan2, Amount: 300, TransactionType: domain.Expense, Category: domain.CategoryFood},
		{TransactionID: 3, Date: jan2, Amount: 200, TransactionType: domain.Expense, Category: domain.CategoryTransport},
	}
	suite.mockRepo.On("ListTransactionsForUser", ctx, suite.userID).Return(stored, nil).Once()

	got, err := suite.service.ListTransactions(ctx, suite.userID,
		ledger.Criteria{Type: "expense"},
		ledger.SortSpec{Key: ledger.SortByAmount, Order: ledger.Descending})

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(int64(2), got[0].TransactionID)
	suite.Equal(int64(3), got[1].TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactionsForUser", ctx, suite.userID).Return(nil, assert.AnError).Once()

	got, err := suite.service.ListTransactions(ctx, suite.userID, ledger.Criteria{}, ledger.SortSpec{})

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_Success() {
	ctx := context.Background()
	data := validTransactionData()

	suite.mockRepo.On("UpdateTransaction", ctx, suite.userID, int64(7), data, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.UpdateTransaction(ctx, suite.userID, 7, data)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ValidatesBeforeStorage() {
	ctx := context.Background()
	data := validTransactionData()
	data.Amount = -5

	err := suite.service.UpdateTransaction(ctx, suite.userID, 7, data)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction")
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_UnknownIDIsError() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteTransaction", ctx, suite.userID, int64(404)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, 404)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestNormalizeAmount() {
	ctx := context.Background()

	got, err := suite.service.NormalizeAmount(ctx, decimal.NewFromInt(100), decimal.NewFromFloat(83.5), "USD")
	suite.Require().NoError(err)
	suite.Equal(int64(835000), got)

	_, err = suite.service.NormalizeAmount(ctx, decimal.NewFromInt(100), decimal.Zero, "USD")
	suite.ErrorIs(err, apperrors.ErrInvalidExchangeRate)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
