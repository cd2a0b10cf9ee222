package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/dto"
	"github.com/agrolink/agrolink-backend/internal/handlers"
	"github.com/agrolink/agrolink-backend/internal/middleware"
	"github.com/agrolink/agrolink-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) CompleteProfile(ctx context.Context, userID string, req dto.CompleteProfileRequest) (*domain.FarmProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmProfile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.FarmProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmProfile), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.FarmProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmProfile), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Test Suite ---
type ProfileHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProfileService *MockProfileService
	jwtSecret          string
}

func (suite *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockProfileService = new(MockProfileService)

	h := handlers.NewProfileHandler(suite.mockProfileService)
	api := suite.router.Group("/api", middleware.AuthMiddleware(suite.jwtSecret))
	profile := api.Group("/profile")
	profile.GET("", h.GetProfile)
	profile.POST("/complete", h.CompleteProfile)
	profile.PUT("/update", h.UpdateProfile)
}

func (suite *ProfileHandlerTestSuite) token(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "agrolink-test")
	suite.Require().NoError(err)
	return token
}

func (suite *ProfileHandlerTestSuite) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func completeRequestFixture() dto.CompleteProfileRequest {
	size := 12.5
	lat, lng := 23.02, 72.57
	return dto.CompleteProfileRequest{
		FarmName:       "Sunrise Farm",
		FarmSize:       &size,
		SizeUnit:       "acres",
		PrimaryCrop:    "rice",
		SoilType:       "loamy",
		IrrigationType: "drip",
		Location:       &dto.LocationRequest{Lat: &lat, Lng: &lng},
	}
}

func (suite *ProfileHandlerTestSuite) TestCompleteProfile_Success() {
	req := completeRequestFixture()
	farm := &domain.FarmProfile{ProfileID: "p-1", UserID: "u-1", FarmName: req.FarmName}
	suite.mockProfileService.On("CompleteProfile", mock.Anything, "u-1", req).Return(farm, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/profile/complete", suite.token("u-1"), req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ProfileEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Profile completed successfully", resp.Message)
	suite.Equal("Sunrise Farm", resp.FarmProfile.FarmName)
}

func (suite *ProfileHandlerTestSuite) TestCompleteProfile_RequiresToken() {
	w := suite.doJSON(http.MethodPost, "/api/profile/complete", "", completeRequestFixture())

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProfileService.AssertNotCalled(suite.T(), "CompleteProfile", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileHandlerTestSuite) TestCompleteProfile_SecondAttempt() {
	req := completeRequestFixture()
	suite.mockProfileService.On("CompleteProfile", mock.Anything, "u-1", req).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.doJSON(http.MethodPost, "/api/profile/complete", suite.token("u-1"), req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Profile already completed")
}

func (suite *ProfileHandlerTestSuite) TestCompleteProfile_RejectsUnknownEnum() {
	w := suite.doJSON(http.MethodPost, "/api/profile/complete", suite.token("u-1"), map[string]any{
		"farmName":       "Sunrise Farm",
		"farmSize":       12.5,
		"sizeUnit":       "furlongs",
		"primaryCrop":    "rice",
		"soilType":       "loamy",
		"irrigationType": "drip",
		"location":       map[string]float64{"lat": 23.02, "lng": 72.57},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProfileService.AssertNotCalled(suite.T(), "CompleteProfile", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileHandlerTestSuite) TestUpdateProfile_Success() {
	newSize := 20.0
	req := dto.UpdateProfileRequest{FarmSize: &newSize}
	farm := &domain.FarmProfile{ProfileID: "p-1", UserID: "u-1", FarmName: "Sunrise Farm", FarmSize: 20}
	suite.mockProfileService.On("UpdateProfile", mock.Anything, "u-1", req).Return(farm, nil).Once()

	w := suite.doJSON(http.MethodPut, "/api/profile/update", suite.token("u-1"), req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Profile updated successfully")
}

func (suite *ProfileHandlerTestSuite) TestUpdateProfile_NoProfileYet() {
	newSize := 20.0
	req := dto.UpdateProfileRequest{FarmSize: &newSize}
	suite.mockProfileService.On("UpdateProfile", mock.Anything, "u-1", req).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodPut, "/api/profile/update", suite.token("u-1"), req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Farm profile not found")
}

func (suite *ProfileHandlerTestSuite) TestGetProfile_Success() {
	farm := &domain.FarmProfile{ProfileID: "p-1", UserID: "u-1", FarmName: "Sunrise Farm"}
	suite.mockProfileService.On("GetProfile", mock.Anything, "u-1").Return(farm, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/profile", suite.token("u-1"), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Sunrise Farm")
}

func TestProfileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}
