package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/geofence"
)

func TestCreateArea_GeneratesID(t *testing.T) {
	uc, repo, _ := newGeofenceUC(t)

	area := downtownArea()
	area.ID = ""
	repo.EXPECT().CreateArea(gomock.Any(), area).Return(nil)

	err := uc.CreateArea(context.Background(), area)
	require.NoError(t, err)
	assert.NotEmpty(t, area.ID)
}

func TestCreateArea_RejectsDegenerateRing(t *testing.T) {
	uc, _, _ := newGeofenceUC(t)

	area := downtownArea()
	area.Boundary = area.Boundary[:2]

	err := uc.CreateArea(context.Background(), area)
	assert.ErrorIs(t, err, geofence.ErrInvalidBoundary)
}

func TestCreateArea_RejectsBadVertex(t *testing.T) {
	uc, _, _ := newGeofenceUC(t)

	area := downtownArea()
	area.Boundary[1].Latitude = 91.0

	err := uc.CreateArea(context.Background(), area)
	assert.ErrorIs(t, err, geofence.ErrInvalidBoundary)
}

func TestUpdateArea_Validates(t *testing.T) {
	uc, _, _ := newGeofenceUC(t)

	area := downtownArea()
	area.Boundary = nil

	err := uc.UpdateArea(context.Background(), area)
	assert.ErrorIs(t, err, geofence.ErrInvalidBoundary)
}

func TestUpdateArea_NotFound(t *testing.T) {
	uc, repo, _ := newGeofenceUC(t)

	area := downtownArea()
	repo.EXPECT().UpdateArea(gomock.Any(), area).Return(geofence.ErrAreaNotFound)

	err := uc.UpdateArea(context.Background(), area)
	assert.ErrorIs(t, err, geofence.ErrAreaNotFound)
}

func TestDeactivateArea(t *testing.T) {
	uc, repo, _ := newGeofenceUC(t)

	repo.EXPECT().DeactivateArea(gomock.Any(), "area-1").Return(nil)

	err := uc.DeactivateArea(context.Background(), "area-1")
	assert.NoError(t, err)
}

func TestListAreas(t *testing.T) {
	uc, repo, _ := newGeofenceUC(t)

	repo.EXPECT().ListAreas(gomock.Any()).Return([]*models.ServiceArea{downtownArea()}, nil)

	areas, err := uc.ListAreas(context.Background())
	require.NoError(t, err)
	assert.Len(t, areas, 1)
}
