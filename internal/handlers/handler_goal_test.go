package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	portssvc "github.com/nwtrack/networth_backend/internal/core/ports/services"
	"github.com/nwtrack/networth_backend/internal/dto"
	"github.com/nwtrack/networth_backend/internal/handlers"
	"github.com/nwtrack/networth_backend/internal/middleware"
)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, userID, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalService) UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	args := m.Called(ctx, userID, goalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	args := m.Called(ctx, userID, goalID)
	return args.Error(0)
}

func (m *MockGoalService) Progress(ctx context.Context, goal domain.Goal) domain.GoalProjection {
	args := m.Called(ctx, goal)
	return args.Get(0).(domain.GoalProjection)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Test Suite ---
type GoalHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockGoalService *MockGoalService
	jwtSecret       string
}

func (suite *GoalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockGoalService = new(MockGoalService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterGoalRoutes(v1, suite.mockGoalService)
}

func (suite *GoalHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+newSignedToken(suite.T(), userID, suite.jwtSecret))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *GoalHandlerTestSuite) TestCreateGoal_Success() {
	userID := uuid.NewString()
	created := &domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          "House deposit",
		Category:      domain.GoalHouse,
		TargetAmount:  decimal.NewFromInt(40000),
		CurrentAmount: decimal.NewFromInt(10000),
		TargetDate:    time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	projection := domain.GoalProjection{
		Percent:       25,
		TimeRemaining: "3 years",
		MonthlyTarget: decimal.NewFromInt(650),
	}

	suite.mockGoalService.On("CreateGoal",
		mock.Anything,
		userID,
		mock.MatchedBy(func(req dto.CreateGoalRequest) bool {
			return req.Name == "House deposit" && req.Category == domain.GoalHouse
		}),
	).Return(created, nil).Once()
	suite.mockGoalService.On("Progress", mock.Anything, *created).
		Return(projection).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/goals", userID, dto.CreateGoalRequest{
		Name:          "House deposit",
		Category:      domain.GoalHouse,
		TargetAmount:  40000,
		CurrentAmount: 10000,
		TargetDate:    "2030-06-01",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var res dto.GoalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(created.GoalID, res.GoalID)
	suite.Equal("2030-06-01", res.TargetDate)
	suite.InDelta(25.0, res.Projection.Percent, 0.001)
	suite.Equal("3 years", res.Projection.TimeRemaining)
	suite.mockGoalService.AssertExpectations(suite.T())
}

func (suite *GoalHandlerTestSuite) TestCreateGoal_MalformedDateRejectedAtBind() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, "/api/v1/goals", userID, map[string]any{
		"name":         "Broken",
		"category":     "other",
		"targetAmount": 100,
		"targetDate":   "June 2030",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGoalService.AssertNotCalled(suite.T(), "CreateGoal")
}

func (suite *GoalHandlerTestSuite) TestListGoals_AttachesProjections() {
	userID := uuid.NewString()
	goals := []domain.Goal{
		{
			GoalID:        "g1",
			UserID:        userID,
			Name:          "Emergency fund",
			Category:      domain.GoalEmergencyFund,
			TargetAmount:  decimal.NewFromInt(5000),
			CurrentAmount: decimal.NewFromInt(5000),
			TargetDate:    time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	suite.mockGoalService.On("ListGoals", mock.Anything, userID).
		Return(goals, nil).Once()
	suite.mockGoalService.On("Progress", mock.Anything, goals[0]).
		Return(domain.GoalProjection{
			Percent:       100,
			TimeRemaining: "4 months",
			MonthlyTarget: decimal.NewFromInt(-50),
		}).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/goals", userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var res dto.ListGoalsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.Goals, 1)
	suite.InDelta(100.0, res.Goals[0].Projection.Percent, 0.001)
	suite.True(res.Goals[0].Projection.MonthlyTarget.IsZero(), "overshoot reports zero monthly target")
}

func (suite *GoalHandlerTestSuite) TestGetGoal_NotFound() {
	userID := uuid.NewString()

	suite.mockGoalService.On("GetGoalByID", mock.Anything, userID, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/goals/missing", userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *GoalHandlerTestSuite) TestDeleteGoal_Forbidden() {
	userID := uuid.NewString()

	suite.mockGoalService.On("DeleteGoal", mock.Anything, userID, "g1").
		Return(apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/goals/g1", userID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestGoalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GoalHandlerTestSuite))
}
