package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/internal/utils"
	"github.com/hhtransportationtx/dispatch/services/tracking"
	"github.com/hhtransportationtx/dispatch/services/tracking/mocks"
)

func newTrackingUC(t *testing.T) (*TrackingUC, *mocks.MockTrackingRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrackingRepo(ctrl)
	cfg := &models.Config{}
	cfg.Dispatch.NearbyRadiusMiles = 5.0
	return NewTrackingUC(cfg, repo), repo
}

func TestProcessLocationUpdate_TagsCell(t *testing.T) {
	uc, repo := newTrackingUC(t)

	update := models.LocationUpdate{
		DriverID: "d1",
		Location: models.Location{
			Latitude:  34.0522,
			Longitude: -118.2437,
			Timestamp: time.Now(),
		},
	}
	expectedCell := utils.EncodeLocation(update.Location, CellPrecision)

	repo.EXPECT().
		StoreSnapshot(gomock.Any(), gomock.Any(), expectedCell).
		Return(nil)

	err := uc.ProcessLocationUpdate(context.Background(), update)
	assert.NoError(t, err)
}

func TestProcessLocationUpdate_FillsTimestamp(t *testing.T) {
	uc, repo := newTrackingUC(t)

	var stored models.LocationUpdate
	repo.EXPECT().
		StoreSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.LocationUpdate, _ string) error {
			stored = u
			return nil
		})

	err := uc.ProcessLocationUpdate(context.Background(), models.LocationUpdate{
		DriverID: "d1",
		Location: models.Location{Latitude: 34.05, Longitude: -118.24},
	})
	require.NoError(t, err)
	assert.False(t, stored.Location.Timestamp.IsZero())
}

func TestProcessLocationUpdate_RejectsBadCoordinates(t *testing.T) {
	uc, _ := newTrackingUC(t)

	err := uc.ProcessLocationUpdate(context.Background(), models.LocationUpdate{
		DriverID: "d1",
		Location: models.Location{Latitude: 120.0, Longitude: -118.24},
	})
	assert.ErrorIs(t, err, tracking.ErrInvalidLocation)
}

func TestProcessLocationUpdate_RejectsMissingDriver(t *testing.T) {
	uc, _ := newTrackingUC(t)

	err := uc.ProcessLocationUpdate(context.Background(), models.LocationUpdate{
		Location: models.Location{Latitude: 34.05, Longitude: -118.24},
	})
	assert.ErrorIs(t, err, tracking.ErrMissingDriverID)
}

func TestProcessStatusUpdate_InactiveWithdrawsDriver(t *testing.T) {
	uc, repo := newTrackingUC(t)

	repo.EXPECT().SetDriverStatus(gomock.Any(), "d1", models.DriverStatusInactive).Return(nil)
	repo.EXPECT().RemoveDriver(gomock.Any(), "d1").Return(nil)

	err := uc.ProcessStatusUpdate(context.Background(), models.StatusUpdate{
		DriverID: "d1",
		Status:   models.DriverStatusInactive,
	})
	assert.NoError(t, err)
}

func TestProcessStatusUpdate_ActiveKeepsIndexes(t *testing.T) {
	uc, repo := newTrackingUC(t)

	repo.EXPECT().SetDriverStatus(gomock.Any(), "d1", models.DriverStatusActive).Return(nil)

	err := uc.ProcessStatusUpdate(context.Background(), models.StatusUpdate{
		DriverID: "d1",
		Status:   models.DriverStatusActive,
	})
	assert.NoError(t, err)
}

func TestGetNearbyDrivers_DefaultRadius(t *testing.T) {
	uc, repo := newTrackingUC(t)

	point := models.Location{Latitude: 34.0522, Longitude: -118.2437}
	repo.EXPECT().
		GetNearbyDrivers(gomock.Any(), point, 5.0).
		Return([]models.NearbyDriver{{ID: "d1", DistanceMiles: 0.4}}, nil)

	drivers, err := uc.GetNearbyDrivers(context.Background(), point, 0)
	assert.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "d1", drivers[0].ID)
}

func TestGetCellSummary(t *testing.T) {
	uc, repo := newTrackingUC(t)

	point := models.Location{Latitude: 34.0522, Longitude: -118.2437}
	cell := utils.EncodeLocation(point, CellPrecision)

	repo.EXPECT().
		GetCellDrivers(gomock.Any(), cell).
		Return([]string{"d1", "d2"}, nil)

	// one populated neighbor, rest empty
	neighbors := utils.GetNeighbors(cell)
	repo.EXPECT().
		GetCellDrivers(gomock.Any(), neighbors[0]).
		Return([]string{"d3"}, nil)
	for _, neighbor := range neighbors[1:] {
		repo.EXPECT().GetCellDrivers(gomock.Any(), neighbor).Return(nil, nil)
	}

	summary, err := uc.GetCellSummary(context.Background(), point)
	require.NoError(t, err)
	assert.Equal(t, cell, summary.Cell)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, map[string]int{neighbors[0]: 1}, summary.Neighbors)
}

func TestGetCellSummary_BadPoint(t *testing.T) {
	uc, _ := newTrackingUC(t)

	_, err := uc.GetCellSummary(context.Background(), models.Location{Latitude: 200, Longitude: 0})
	assert.ErrorIs(t, err, tracking.ErrInvalidLocation)
}
