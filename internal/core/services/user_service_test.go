package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	portssvc "github.com/nwtrack/networth_backend/internal/core/ports/services"
	"github.com/nwtrack/networth_backend/internal/core/services"
	"github.com/nwtrack/networth_backend/internal/dto"
	"github.com/nwtrack/networth_backend/internal/utils"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*domain.User, error) {
	args := m.Called(ctx, refreshTokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice" &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != "" &&
			u.PasswordHash != "correct horse battery"
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "alice",
		Name:     "Alice",
		Password: "correct horse battery",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_UsernameTaken() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").
		Return(&domain.User{UserID: "u1", Username: "alice"}, nil).Once()

	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "alice",
		Password: "long-enough-pass",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateUser_WeakPasswordRejected() {
	ctx := context.Background()

	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "alice",
		Password: "short",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByUsername")
}

func (suite *UserServiceTestSuite) TestStoreRefreshToken_PersistsHashNotPlaintext() {
	ctx := context.Background()
	expiry := time.Now().Add(30 * 24 * time.Hour)

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, "u1",
		utils.HashRefreshToken("plain-token"), expiry).
		Return(nil).Once()

	err := suite.service.StoreRefreshToken(ctx, "u1", "plain-token", expiry)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByRefreshToken_Valid() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:                "u1",
		RefreshTokenHash:      utils.HashRefreshToken("plain-token"),
		RefreshTokenExpiresAt: &expiry,
	}

	suite.mockUserRepo.On("FindUserByRefreshTokenHash", ctx, stored.RefreshTokenHash).
		Return(stored, nil).Once()

	user, err := suite.service.GetUserByRefreshToken(ctx, "plain-token")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
}

func (suite *UserServiceTestSuite) TestGetUserByRefreshToken_Expired() {
	ctx := context.Background()
	expiry := time.Now().Add(-time.Minute)
	stored := &domain.User{
		UserID:                "u1",
		RefreshTokenHash:      utils.HashRefreshToken("plain-token"),
		RefreshTokenExpiresAt: &expiry,
	}

	suite.mockUserRepo.On("FindUserByRefreshTokenHash", ctx, stored.RefreshTokenHash).
		Return(stored, nil).Once()

	_, err := suite.service.GetUserByRefreshToken(ctx, "plain-token")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetUserByRefreshToken_Unknown() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByRefreshTokenHash", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByRefreshToken(ctx, "forged")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ExistingIdentity() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", AuthProvider: domain.ProviderGoogle, ProviderUserID: "google-sub"}

	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-sub").
		Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Alice", "alice@example.com", domain.ProviderGoogle, "google-sub")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_NewIdentityDerivesUsername() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-sub").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID == "google-sub" &&
			len(u.Username) > len("alice_")
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Alice", "alice@example.com", domain.ProviderGoogle, "google-sub")

	suite.Require().NoError(err)
	suite.Contains(user.Username, "alice_")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
