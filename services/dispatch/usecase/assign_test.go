package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/dispatch"
	"github.com/hhtransportationtx/dispatch/services/dispatch/mocks"
)

func unassignedTrip(id string) *models.Trip {
	return &models.Trip{
		ID:             id,
		PatientName:    "Pat Doe",
		PickupAddress:  "123 Main St, Los Angeles, CA",
		PickupLocation: &models.Location{Latitude: 34.0522, Longitude: -118.2437},
		PickupTime:     time.Now().Add(time.Hour),
		Status:         models.TripStatusUnassigned,
	}
}

func TestAssignTripByID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	trip := unassignedTrip("trip-1")
	drivers := []models.DriverSnapshot{
		activeDriver("d2", 34.4000, -118.6000, 3),
		activeDriver("d1", 34.0400, -118.2500, 0),
	}

	mockRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	mockRepo.EXPECT().GetDriverSnapshots(gomock.Any()).Return(drivers, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "trip-1", "d1").Return(nil)
	mockGW.EXPECT().PublishTripAssigned(gomock.Any(), models.AssignedEvent{
		TripID:     "trip-1",
		DriverID:   "d1",
		DriverName: "Driver d1",
	}).Return(nil)

	result, err := uc.AssignTripByID(context.Background(), "trip-1")

	assert.NoError(t, err)
	assert.True(t, result.Assigned)
	assert.Equal(t, "d1", result.DriverID)
	assert.Equal(t, "Driver d1", result.DriverName)
}

func TestAssignTripByID_TripNotUnassigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	trip := unassignedTrip("trip-1")
	trip.Status = models.TripStatusAssigned

	mockRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)

	_, err := uc.AssignTripByID(context.Background(), "trip-1")

	assert.ErrorIs(t, err, dispatch.ErrTripNotUnassigned)
}

func TestAssignTripByID_NoCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	trip := unassignedTrip("trip-1")

	mockRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	mockRepo.EXPECT().GetDriverSnapshots(gomock.Any()).Return(nil, nil)
	// No AssignDriver expectation: the store must not be touched.

	result, err := uc.AssignTripByID(context.Background(), "trip-1")

	assert.NoError(t, err)
	assert.False(t, result.Assigned)
	assert.Equal(t, dispatch.ReasonNoDrivers, result.Reason)
}

func TestAssignTripByID_CommitConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	trip := unassignedTrip("trip-1")
	drivers := []models.DriverSnapshot{activeDriver("d1", 34.0400, -118.2500, 0)}

	mockRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	mockRepo.EXPECT().GetDriverSnapshots(gomock.Any()).Return(drivers, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "trip-1", "d1").Return(dispatch.ErrTripTaken)

	result, err := uc.AssignTripByID(context.Background(), "trip-1")

	assert.NoError(t, err)
	assert.False(t, result.Assigned)
	assert.Equal(t, dispatch.ReasonAssignFailed, result.Reason)
}

func TestAssignTripByID_GeocodesMissingPickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	trip := unassignedTrip("trip-1")
	trip.PickupLocation = nil
	geocoded := &models.Location{Latitude: 34.0522, Longitude: -118.2437}
	drivers := []models.DriverSnapshot{activeDriver("d1", 34.0400, -118.2500, 0)}

	mockRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	mockGW.EXPECT().GeocodeAddress(gomock.Any(), trip.PickupAddress).Return(geocoded, nil)
	mockRepo.EXPECT().SavePickupLocation(gomock.Any(), "trip-1", *geocoded).Return(nil)
	mockRepo.EXPECT().GetDriverSnapshots(gomock.Any()).Return(drivers, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "trip-1", "d1").Return(nil)
	mockGW.EXPECT().PublishTripAssigned(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.AssignTripByID(context.Background(), "trip-1")

	assert.NoError(t, err)
	assert.True(t, result.Assigned)
}

func TestAssignTripByID_GeocodeFailureFallsBackToNeutral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	trip := unassignedTrip("trip-1")
	trip.PickupLocation = nil
	drivers := []models.DriverSnapshot{activeDriver("d1", 34.0400, -118.2500, 0)}

	mockRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	mockGW.EXPECT().GeocodeAddress(gomock.Any(), trip.PickupAddress).
		Return(nil, dispatch.ErrGeocodeUnavailable)
	mockRepo.EXPECT().GetDriverSnapshots(gomock.Any()).Return(drivers, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "trip-1", "d1").Return(nil)
	mockGW.EXPECT().PublishTripAssigned(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.AssignTripByID(context.Background(), "trip-1")

	assert.NoError(t, err)
	assert.True(t, result.Assigned)
}

func TestAssignUnassigned_FailureDoesNotBlockBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	tripA := unassignedTrip("trip-a")
	tripB := unassignedTrip("trip-b")
	drivers := []models.DriverSnapshot{activeDriver("d1", 34.0400, -118.2500, 0)}

	mockRepo.EXPECT().ListUnassignedTrips(gomock.Any(), 50).
		Return([]*models.Trip{tripA, tripB}, nil)
	mockRepo.EXPECT().GetDriverSnapshots(gomock.Any()).Return(drivers, nil).Times(2)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "trip-a", "d1").Return(dispatch.ErrTripTaken)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "trip-b", "d1").Return(nil)
	mockGW.EXPECT().PublishTripAssigned(gomock.Any(), gomock.Any()).Return(nil)

	results, err := uc.AssignUnassigned(context.Background())

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "trip-a", results[0].TripID)
	assert.False(t, results[0].Assigned)
	assert.Equal(t, "trip-b", results[1].TripID)
	assert.True(t, results[1].Assigned)
}

func TestAssignUnassigned_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().ListUnassignedTrips(gomock.Any(), 50).
		Return(nil, errors.New("connection refused"))

	_, err := uc.AssignUnassigned(context.Background())

	assert.Error(t, err)
}
