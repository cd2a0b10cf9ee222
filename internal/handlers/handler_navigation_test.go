package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	"github.com/agrolink/agrolink-backend/internal/core/gate"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) VerifyAccessToken(ctx context.Context, tokenString string) (string, error) {
	args := m.Called(ctx, tokenString)
	return args.String(0), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserWithProfile(ctx context.Context, userID string) (*domain.User, *domain.FarmProfile, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	var profile *domain.FarmProfile
	if args.Get(1) != nil {
		profile = args.Get(1).(*domain.FarmProfile)
	}
	return user, profile, args.Error(2)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type NavigationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockTokenSvc *MockTokenService
	mockUserSvc  *MockUserService
}

func (suite *NavigationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockTokenSvc = new(MockTokenService)
	suite.mockUserSvc = new(MockUserService)

	h := handlers.NewNavigationHandler(suite.mockTokenSvc, suite.mockUserSvc)
	suite.router.GET("/api/navigation/decide", h.Decide)
}

func (suite *NavigationHandlerTestSuite) decide(route, token string) gate.Decision {
	req := httptest.NewRequest(http.MethodGet, "/api/navigation/decide?route="+route, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusOK, w.Code)

	var decision gate.Decision
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decision))
	return decision
}

func (suite *NavigationHandlerTestSuite) TestNoToken_ProtectedRouteRedirectsToLanding() {
	decision := suite.decide("/dashboard", "")

	suite.Equal(gate.Redirect, decision.Act)
	suite.Equal("/", decision.Target)
}

func (suite *NavigationHandlerTestSuite) TestInvalidToken_TreatedAsNoSession() {
	suite.mockTokenSvc.On("VerifyAccessToken", mock.Anything, "garbage").
		Return("", apperrors.ErrUnauthorized).Once()

	decision := suite.decide("/dashboard", "garbage")

	suite.Equal(gate.Redirect, decision.Act)
	suite.Equal("/", decision.Target)
}

func (suite *NavigationHandlerTestSuite) TestIncompleteProfile_DashboardRedirectsToCompletion() {
	suite.mockTokenSvc.On("VerifyAccessToken", mock.Anything, "valid").Return("u-1", nil).Once()
	suite.mockUserSvc.On("GetUserByID", mock.Anything, "u-1").
		Return(&domain.User{UserID: "u-1", HasCompletedProfile: false}, nil).Once()

	decision := suite.decide("/dashboard", "valid")

	suite.Equal(gate.Redirect, decision.Act)
	suite.Equal("/complete-profile", decision.Target)
}

func (suite *NavigationHandlerTestSuite) TestCompletionFlagIsRevalidatedServerSide() {
	// The stored user says incomplete; whatever the client believes, the
	// decision follows the store.
	suite.mockTokenSvc.On("VerifyAccessToken", mock.Anything, "valid").Return("u-1", nil).Twice()
	suite.mockUserSvc.On("GetUserByID", mock.Anything, "u-1").
		Return(&domain.User{UserID: "u-1", HasCompletedProfile: false}, nil).Once()

	decision := suite.decide("/complete-profile", "valid")
	suite.Equal(gate.Allow, decision.Act)

	// After completion the same route check sends the user onward.
	suite.mockUserSvc.On("GetUserByID", mock.Anything, "u-1").
		Return(&domain.User{UserID: "u-1", HasCompletedProfile: true}, nil).Once()

	decision = suite.decide("/", "valid")
	suite.Equal(gate.Redirect, decision.Act)
	suite.Equal("/dashboard", decision.Target)
}

func (suite *NavigationHandlerTestSuite) TestMissingRouteParam() {
	req := httptest.NewRequest(http.MethodGet, "/api/navigation/decide", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestNavigationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NavigationHandlerTestSuite))
}
