package services_test

import (
	"context"
	"testing"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/core/services"
	"github.com/agrolink/agrolink-backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func completeProfileFixture() dto.CompleteProfileRequest {
	return dto.CompleteProfileRequest{
		FarmName:       "Sunrise Farm",
		FarmSize:       floatPtr(12.5),
		SizeUnit:       "acres",
		PrimaryCrop:    "rice",
		SecondaryCrops: []string{"wheat", "vegetables"},
		SoilType:       "loamy",
		IrrigationType: "drip",
		Location:       &dto.LocationRequest{Lat: floatPtr(23.02), Lng: floatPtr(72.57)},
	}
}

type ProfileServiceTestSuite struct {
	suite.Suite
	mockProfileRepo *MockFarmProfileRepository
	profileService  portssvc.ProfileSvcFacade
	ctx             context.Context
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.mockProfileRepo = new(MockFarmProfileRepository)
	suite.profileService = services.NewProfileService(suite.mockProfileRepo)
	suite.ctx = context.Background()
}

func (suite *ProfileServiceTestSuite) TestCompleteProfile_Success() {
	var persisted domain.FarmProfile
	suite.mockProfileRepo.On("CreateProfileAndMarkComplete", suite.ctx, mock.AnythingOfType("domain.FarmProfile")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(domain.FarmProfile)
		}).
		Return(nil).Once()

	profile, err := suite.profileService.CompleteProfile(suite.ctx, "u-1", completeProfileFixture())

	suite.Require().NoError(err)
	suite.NotEmpty(profile.ProfileID)
	suite.Equal("u-1", profile.UserID)
	suite.Equal(domain.CropType("rice"), profile.PrimaryCrop)
	suite.Equal(persisted.ProfileID, profile.ProfileID, "returned profile is the persisted one")
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestCompleteProfile_SecondAttemptFails() {
	suite.mockProfileRepo.On("CreateProfileAndMarkComplete", suite.ctx, mock.AnythingOfType("domain.FarmProfile")).
		Return(apperrors.ErrDuplicate).Once()

	profile, err := suite.profileService.CompleteProfile(suite.ctx, "u-1", completeProfileFixture())

	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ProfileServiceTestSuite) TestUpdateProfile_PartialMerge() {
	existing := &domain.FarmProfile{
		ProfileID:      "p-1",
		UserID:         "u-1",
		FarmName:       "Sunrise Farm",
		FarmSize:       12.5,
		SizeUnit:       domain.SizeUnitAcres,
		PrimaryCrop:    domain.CropRice,
		SoilType:       domain.SoilLoamy,
		IrrigationType: domain.IrrigationDrip,
		Location:       domain.Location{Lat: 23.02, Lng: 72.57},
	}
	suite.mockProfileRepo.On("FindProfileByUserID", suite.ctx, "u-1").Return(existing, nil).Once()

	var persisted domain.FarmProfile
	suite.mockProfileRepo.On("UpdateProfile", suite.ctx, mock.AnythingOfType("domain.FarmProfile")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(domain.FarmProfile)
		}).
		Return(nil).Once()

	updated, err := suite.profileService.UpdateProfile(suite.ctx, "u-1", dto.UpdateProfileRequest{
		FarmSize:    floatPtr(20),
		PrimaryCrop: strPtr("wheat"),
	})

	suite.Require().NoError(err)
	suite.Equal(20.0, updated.FarmSize)
	suite.Equal(domain.CropType("wheat"), updated.PrimaryCrop)
	// Untouched fields survive the merge.
	suite.Equal("Sunrise Farm", persisted.FarmName)
	suite.Equal(domain.SizeUnitAcres, persisted.SizeUnit)
	suite.Equal(domain.Location{Lat: 23.02, Lng: 72.57}, persisted.Location)
}

func (suite *ProfileServiceTestSuite) TestUpdateProfile_NoProfileYet() {
	suite.mockProfileRepo.On("FindProfileByUserID", suite.ctx, "u-1").
		Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.profileService.UpdateProfile(suite.ctx, "u-1", dto.UpdateProfileRequest{FarmSize: floatPtr(20)})

	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProfileRepo.AssertNotCalled(suite.T(), "UpdateProfile", mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestGetProfile_NotFound() {
	suite.mockProfileRepo.On("FindProfileByUserID", suite.ctx, "u-1").
		Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.profileService.GetProfile(suite.ctx, "u-1")

	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
