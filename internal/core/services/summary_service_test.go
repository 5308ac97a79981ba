package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	portssvc "github.com/nwtrack/networth_backend/internal/core/ports/services"
	"github.com/nwtrack/networth_backend/internal/core/services"
)

// MockSnapshotRepository is a mock type for the SnapshotRepositoryFacade interface
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.NetWorthSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) FindLatestBefore(ctx context.Context, userID string, cutoff time.Time) (*domain.NetWorthSnapshot, error) {
	args := m.Called(ctx, userID, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetWorthSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) ListSnapshots(ctx context.Context, userID string) ([]domain.NetWorthSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NetWorthSnapshot), args.Error(1)
}

// --- Test Suite Setup ---

type SummaryServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockSnapshotRepo *MockSnapshotRepository
	service          portssvc.SummarySvcFacade
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockSnapshotRepo = new(MockSnapshotRepository)
	suite.service = services.NewSummaryService(suite.mockAccountRepo, suite.mockSnapshotRepo)
}

// --- Test Cases ---

func (suite *SummaryServiceTestSuite) TestGetSummary_NoHistory() {
	ctx := context.Background()
	accounts := []domain.Account{
		{Balance: decimal.NewFromInt(1000), IsAsset: true},
		{Balance: decimal.NewFromInt(300), IsAsset: false},
	}

	suite.mockAccountRepo.On("ListAllAccounts", ctx, "user-1").Return(accounts, nil).Once()
	suite.mockSnapshotRepo.On("FindLatestBefore", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSnapshotRepo.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.NetWorthSnapshot")).
		Return(nil).Once()

	summary, err := suite.service.GetSummary(ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(summary.TotalAssets.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalLiabilities.Equal(decimal.NewFromInt(300)))
	suite.True(summary.NetWorth.Equal(decimal.NewFromInt(700)))
	suite.True(summary.MonthlyChange.IsZero(), "no baseline, change stays neutral")
	suite.Zero(summary.ChangePercentage)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestGetSummary_WithPriorSnapshot() {
	ctx := context.Background()
	accounts := []domain.Account{
		{Balance: decimal.NewFromInt(1100), IsAsset: true},
	}
	prior := &domain.NetWorthSnapshot{
		NetWorth: decimal.NewFromInt(1000),
		AsOf:     time.Now().Add(-45 * 24 * time.Hour),
	}

	suite.mockAccountRepo.On("ListAllAccounts", ctx, "user-1").Return(accounts, nil).Once()
	suite.mockSnapshotRepo.On("FindLatestBefore", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(prior, nil).Once()
	suite.mockSnapshotRepo.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.NetWorthSnapshot")).
		Return(nil).Once()

	summary, err := suite.service.GetSummary(ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(summary.MonthlyChange.Equal(decimal.NewFromInt(100)))
	suite.InDelta(10.0, summary.ChangePercentage, 0.001)
}

func (suite *SummaryServiceTestSuite) TestGetSummary_RecordsTodaySnapshot() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAllAccounts", ctx, "user-1").
		Return([]domain.Account{{Balance: decimal.NewFromInt(500), IsAsset: true}}, nil).Once()
	suite.mockSnapshotRepo.On("FindLatestBefore", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSnapshotRepo.On("SaveSnapshot", ctx, mock.MatchedBy(func(s domain.NetWorthSnapshot) bool {
		return s.UserID == "user-1" && s.NetWorth.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()

	_, err := suite.service.GetSummary(ctx, "user-1")

	suite.Require().NoError(err)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestGetSummary_SnapshotWriteFailureDoesNotFailRead() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAllAccounts", ctx, "user-1").
		Return([]domain.Account{}, nil).Once()
	suite.mockSnapshotRepo.On("FindLatestBefore", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSnapshotRepo.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.NetWorthSnapshot")).
		Return(errors.New("disk full")).Once()

	summary, err := suite.service.GetSummary(ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(summary.NetWorth.IsZero())
}

func (suite *SummaryServiceTestSuite) TestGetSummary_AccountLoadFailure() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAllAccounts", ctx, "user-1").
		Return(nil, errors.New("connection refused")).Once()

	_, err := suite.service.GetSummary(ctx, "user-1")

	suite.Require().Error(err)
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "SaveSnapshot")
}

func (suite *SummaryServiceTestSuite) TestGetHistory_OldestFirstPassthrough() {
	ctx := context.Background()
	snapshots := []domain.NetWorthSnapshot{
		{NetWorth: decimal.NewFromInt(100), AsOf: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{NetWorth: decimal.NewFromInt(200), AsOf: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockSnapshotRepo.On("ListSnapshots", ctx, "user-1").Return(snapshots, nil).Once()

	got, err := suite.service.GetHistory(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.True(got[0].AsOf.Before(got[1].AsOf))
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
