package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	portssvc "github.com/nwtrack/networth_backend/internal/core/ports/services"
	"github.com/nwtrack/networth_backend/internal/core/services"
	"github.com/nwtrack/networth_backend/internal/dto"
)

// MockGoalRepository is a mock type for the GoalRepositoryFacade interface
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo    *MockGoalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewGoalService(suite.mockGoalRepo, suite.mockAccountRepo)
}

// --- Test Cases ---

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateGoalRequest{
		Name:          "House Deposit",
		Category:      domain.GoalHouse,
		TargetAmount:  50000,
		CurrentAmount: 10000,
		TargetDate:    "2030-06-01",
	}

	suite.mockGoalRepo.On("SaveGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	created, err := suite.service.CreateGoal(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.GoalID)
	suite.Equal(userID, created.UserID)
	suite.True(created.TargetAmount.Equal(decimal.NewFromInt(50000)))
	suite.True(created.CurrentAmount.Equal(decimal.NewFromInt(10000)))
	suite.Equal(2030, created.TargetDate.Year())
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_UseNetWorthPinsCurrentAmount() {
	ctx := context.Background()
	userID := uuid.NewString()
	accounts := []domain.Account{
		{Balance: decimal.NewFromInt(8000), IsAsset: true},
		{Balance: decimal.NewFromInt(3000), IsAsset: false},
	}
	req := dto.CreateGoalRequest{
		Name:          "Retire Early",
		Category:      domain.GoalRetirement,
		TargetAmount:  1000000,
		CurrentAmount: 42, // ignored when useNetWorth is set
		TargetDate:    "2045-01-01",
		UseNetWorth:   true,
	}

	suite.mockAccountRepo.On("ListAllAccounts", ctx, userID).Return(accounts, nil).Once()
	suite.mockGoalRepo.On("SaveGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	created, err := suite.service.CreateGoal(ctx, userID, req)

	suite.Require().NoError(err)
	suite.True(created.CurrentAmount.Equal(decimal.NewFromInt(5000)),
		"current amount pinned to assets minus liabilities, got %s", created.CurrentAmount)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_ZeroTargetRejected() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Nothing",
		Category:     domain.GoalOther,
		TargetAmount: 0,
		TargetDate:   "2030-01-01",
	}

	_, err := suite.service.CreateGoal(ctx, uuid.NewString(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal")
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_RepinToNetWorth() {
	ctx := context.Background()
	existing := &domain.Goal{
		GoalID:        "goal-1",
		UserID:        "user-1",
		Name:          "Emergency Fund",
		Category:      domain.GoalEmergencyFund,
		TargetAmount:  decimal.NewFromInt(20000),
		CurrentAmount: decimal.NewFromInt(5000),
		TargetDate:    time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	accounts := []domain.Account{
		{Balance: decimal.NewFromInt(7500), IsAsset: true},
	}

	suite.mockGoalRepo.On("FindGoalByID", ctx, "goal-1").Return(existing, nil).Once()
	suite.mockAccountRepo.On("ListAllAccounts", ctx, "user-1").Return(accounts, nil).Once()
	suite.mockGoalRepo.On("UpdateGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	updated, err := suite.service.UpdateGoal(ctx, "user-1", "goal-1", dto.UpdateGoalRequest{
		UseNetWorth: true,
	})

	suite.Require().NoError(err)
	suite.True(updated.CurrentAmount.Equal(decimal.NewFromInt(7500)))
}

func (suite *GoalServiceTestSuite) TestGetGoalByID_ForbiddenForOtherUser() {
	ctx := context.Background()
	goal := &domain.Goal{GoalID: "goal-1", UserID: "owner"}

	suite.mockGoalRepo.On("FindGoalByID", ctx, "goal-1").Return(goal, nil).Once()

	_, err := suite.service.GetGoalByID(ctx, "intruder", "goal-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *GoalServiceTestSuite) TestProgress_UsesStoredSnapshotNotLiveNetWorth() {
	ctx := context.Background()
	goal := domain.Goal{
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.NewFromInt(2500),
		TargetDate:    time.Now().Add(90 * 24 * time.Hour),
	}

	projection := suite.service.Progress(ctx, goal)

	suite.InDelta(25.0, projection.Percent, 0.001)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAllAccounts")
}

func (suite *GoalServiceTestSuite) TestDeleteGoal_Success() {
	ctx := context.Background()
	goal := &domain.Goal{GoalID: "goal-1", UserID: "user-1"}

	suite.mockGoalRepo.On("FindGoalByID", ctx, "goal-1").Return(goal, nil).Once()
	suite.mockGoalRepo.On("DeleteGoal", ctx, "goal-1").Return(nil).Once()

	err := suite.service.DeleteGoal(ctx, "user-1", "goal-1")

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
