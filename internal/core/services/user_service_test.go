package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/paisatrack/pft_backend/internal/apperrors"
	"github.com/paisatrack/pft_backend/internal/core/domain"
	portssvc "github.com/paisatrack/pft_backend/internal/core/ports/services"
	"github.com/paisatrack/pft_backend/internal/core/services"
	"github.com/paisatrack/pft_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
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

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfileName(ctx context.Context, userID string, name string, now time.Time) error {
	args := m.Called(ctx, userID, name, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.UserRole, now time.Time) error {
	args := m.Called(ctx, userID, role, now)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "asha").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "asha" && u.Role == domain.RoleUser && u.PasswordHash != "" && u.PasswordHash != "secret-password"
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, " asha ", "secret-password", "Asha")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("asha", user.Username)
	suite.Equal(domain.RoleUser, user.Role)
	suite.NotEmpty(user.UserID)
	suite.True(utils.CheckPasswordHash("secret-password", user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Username: "asha"}

	suite.mockRepo.On("FindUserByUsername", ctx, "asha").Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, "asha", "secret-password", "")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestRegister_MissingCredentials() {
	ctx := context.Background()

	_, err := suite.service.Register(ctx, "", "pw", "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Register(ctx, "asha", "", "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "asha", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "asha").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "asha", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "asha", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "asha").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "asha", "battery-staple")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetProfile_NotOnboarded() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID, Username: "asha", Name: ""}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	profile, err := suite.service.GetProfile(ctx, userID)

	suite.Require().NoError(err)
	suite.Nil(profile)
}

func (suite *UserServiceTestSuite) TestGetProfile_Onboarded() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID, Username: "asha", Name: "Asha"}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	profile, err := suite.service.GetProfile(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(profile)
	suite.Equal("Asha", profile.Name)
}

func (suite *UserServiceTestSuite) TestSaveProfile_OverwritesName() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("UpdateProfileName", ctx, userID, "Asha R", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.SaveProfile(ctx, userID, "  Asha R  ")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSaveProfile_EmptyName() {
	ctx := context.Background()

	err := suite.service.SaveProfile(ctx, uuid.NewString(), "   ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProfileName")
}

func (suite *UserServiceTestSuite) TestAssignRole_AdminOnly() {
	ctx := context.Background()
	callerID := uuid.NewString()
	targetID := uuid.NewString()
	caller := &domain.User{UserID: callerID, Role: domain.RoleUser}

	suite.mockRepo.On("FindUserByID", ctx, callerID).Return(caller, nil).Once()

	err := suite.service.AssignRole(ctx, callerID, targetID, domain.RoleAdmin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserRole")
}

func (suite *UserServiceTestSuite) TestAssignRole_Success() {
	ctx := context.Background()
	callerID := uuid.NewString()
	targetID := uuid.NewString()
	caller := &domain.User{UserID: callerID, Role: domain.RoleAdmin}

	suite.mockRepo.On("FindUserByID", ctx, callerID).Return(caller, nil).Once()
	suite.mockRepo.On("UpdateUserRole", ctx, targetID, domain.RoleGuest, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.AssignRole(ctx, callerID, targetID, domain.RoleGuest)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAssignRole_InvalidRole() {
	ctx := context.Background()

	err := suite.service.AssignRole(ctx, uuid.NewString(), uuid.NewString(), "superuser")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByID")
}

func (suite *UserServiceTestSuite) TestIsAdmin() {
	ctx := context.Background()
	adminID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, adminID).Return(&domain.User{UserID: adminID, Role: domain.RoleAdmin}, nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Role: domain.RoleUser}, nil).Once()

	isAdmin, err := suite.service.IsAdmin(ctx, adminID)
	suite.Require().NoError(err)
	suite.True(isAdmin)

	isAdmin, err = suite.service.IsAdmin(ctx, userID)
	suite.Require().NoError(err)
	suite.False(isAdmin)
}

func (suite *UserServiceTestSuite) TestGetRole_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	role, err := suite.service.GetRole(ctx, userID)

	suite.Require().Error(err)
	suite.Empty(role)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
