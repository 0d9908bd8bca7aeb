package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhtransportationtx/dispatch/internal/pkg/constants"
	"github.com/hhtransportationtx/dispatch/internal/pkg/database"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, &database.RedisClient{Client: client}
}

func sampleUpdate(driverID string, lat, lng float64) models.LocationUpdate {
	return models.LocationUpdate{
		DriverID: driverID,
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.Now(),
		},
		Status: string(models.DriverStatusActive),
	}
}

func TestStoreSnapshot(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()
	repo := NewTrackingRepository(client)

	ctx := context.Background()
	err := repo.StoreSnapshot(ctx, sampleUpdate("d1", 34.0522, -118.2437), "9q5ctr")
	assert.NoError(t, err)

	snapshotKey := fmt.Sprintf(constants.KeyDriverSnapshot, "d1")
	assert.Equal(t, "34.0522", mr.HGet(snapshotKey, constants.FieldLatitude))
	assert.Equal(t, "-118.2437", mr.HGet(snapshotKey, constants.FieldLongitude))
	assert.Equal(t, "9q5ctr", mr.HGet(snapshotKey, constants.FieldGeohash))
	assert.Equal(t, "active", mr.HGet(snapshotKey, constants.FieldStatus))
	assert.Greater(t, mr.TTL(snapshotKey), time.Duration(0))

	cellKey := fmt.Sprintf(constants.KeyDriverCell, "9q5ctr")
	members, err := client.SMembers(ctx, cellKey)
	assert.NoError(t, err)
	assert.Equal(t, []string{"d1"}, members)
}

func TestStoreSnapshot_CellMove(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()
	repo := NewTrackingRepository(client)

	ctx := context.Background()
	require.NoError(t, repo.StoreSnapshot(ctx, sampleUpdate("d1", 34.0522, -118.2437), "9q5ctr"))
	require.NoError(t, repo.StoreSnapshot(ctx, sampleUpdate("d1", 34.0600, -118.2300), "9q5ctx"))

	oldMembers, err := client.SMembers(ctx, fmt.Sprintf(constants.KeyDriverCell, "9q5ctr"))
	assert.NoError(t, err)
	assert.Empty(t, oldMembers)

	newMembers, err := client.SMembers(ctx, fmt.Sprintf(constants.KeyDriverCell, "9q5ctx"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"d1"}, newMembers)
}

func TestSetDriverStatus(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()
	repo := NewTrackingRepository(client)

	ctx := context.Background()
	require.NoError(t, repo.StoreSnapshot(ctx, sampleUpdate("d1", 34.0522, -118.2437), "9q5ctr"))

	err := repo.SetDriverStatus(ctx, "d1", models.DriverStatusInactive)
	assert.NoError(t, err)

	snapshotKey := fmt.Sprintf(constants.KeyDriverSnapshot, "d1")
	assert.Equal(t, "inactive", mr.HGet(snapshotKey, constants.FieldStatus))
}

func TestRemoveDriver(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()
	repo := NewTrackingRepository(client)

	ctx := context.Background()
	require.NoError(t, repo.StoreSnapshot(ctx, sampleUpdate("d1", 34.0522, -118.2437), "9q5ctr"))

	err := repo.RemoveDriver(ctx, "d1")
	assert.NoError(t, err)

	members, err := client.SMembers(ctx, fmt.Sprintf(constants.KeyDriverCell, "9q5ctr"))
	assert.NoError(t, err)
	assert.Empty(t, members)

	nearby, err := repo.GetNearbyDrivers(ctx, models.Location{Latitude: 34.0522, Longitude: -118.2437}, 10)
	assert.NoError(t, err)
	assert.Empty(t, nearby)

	// last known position survives for snapshot reads
	snapshotKey := fmt.Sprintf(constants.KeyDriverSnapshot, "d1")
	assert.Equal(t, "34.0522", mr.HGet(snapshotKey, constants.FieldLatitude))
}

func TestGetNearbyDrivers_NearestFirst(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()
	repo := NewTrackingRepository(client)

	ctx := context.Background()
	require.NoError(t, repo.StoreSnapshot(ctx, sampleUpdate("near", 34.0530, -118.2440), "9q5ctr"))
	require.NoError(t, repo.StoreSnapshot(ctx, sampleUpdate("far", 34.1000, -118.3000), "9q5cu0"))
	require.NoError(t, repo.StoreSnapshot(ctx, sampleUpdate("outside", 35.0000, -119.0000), "9q7000"))

	nearby, err := repo.GetNearbyDrivers(ctx, models.Location{Latitude: 34.0522, Longitude: -118.2437}, 10)
	assert.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "near", nearby[0].ID)
	assert.Equal(t, "far", nearby[1].ID)
	assert.Less(t, nearby[0].DistanceMiles, nearby[1].DistanceMiles)
}

func TestGetCellDrivers_EmptyCell(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()
	repo := NewTrackingRepository(client)

	ids, err := repo.GetCellDrivers(context.Background(), "9q5ctr")
	assert.NoError(t, err)
	assert.Empty(t, ids)
}
