package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/dispatch"
)

// AssignTripByID assigns the best available driver to a single trip.
// The trip must still be unassigned when the commit write lands; a
// concurrent assignment surfaces as a per-trip failure result.
func (uc *DispatchUC) AssignTripByID(ctx context.Context, tripID string) (models.AssignmentResult, error) {
	trip, err := uc.dispatchRepo.GetTrip(ctx, tripID)
	if err != nil {
		return models.AssignmentResult{}, fmt.Errorf("failed to load trip: %w", err)
	}
	if trip.Status != models.TripStatusUnassigned {
		return models.AssignmentResult{}, dispatch.ErrTripNotUnassigned
	}

	return uc.assignTrip(ctx, trip), nil
}

// AssignUnassigned runs one assignment pass over the current
// unassigned-trip set, in pickup-time order, up to the configured batch
// limit. A failure on one trip never blocks the rest of the batch.
func (uc *DispatchUC) AssignUnassigned(ctx context.Context) ([]models.AssignmentResult, error) {
	trips, err := uc.dispatchRepo.ListUnassignedTrips(ctx, uc.cfg.Dispatch.BatchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned trips: %w", err)
	}

	results := make([]models.AssignmentResult, 0, len(trips))
	for _, trip := range trips {
		results = append(results, uc.assignTrip(ctx, trip))
	}

	logger.Info("Assignment pass completed",
		logger.Int("trips", len(trips)),
		logger.Int("assigned", countAssigned(results)))

	return results, nil
}

// assignTrip ranks candidates for one trip and commits the top candidate.
// Exactly one store write happens on success and none on failure.
func (uc *DispatchUC) assignTrip(ctx context.Context, trip *models.Trip) models.AssignmentResult {
	pickup := uc.resolvePickup(ctx, trip)

	drivers, err := uc.dispatchRepo.GetDriverSnapshots(ctx)
	if err != nil {
		logger.Error("Failed to load driver snapshots",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
		return models.AssignmentResult{TripID: trip.ID, Reason: dispatch.ReasonAssignFailed}
	}

	candidates := uc.RankCandidates(pickup, drivers)
	if len(candidates) == 0 {
		return models.AssignmentResult{TripID: trip.ID, Reason: dispatch.ReasonNoDrivers}
	}

	top := candidates[0].Driver
	if err := uc.dispatchRepo.AssignDriver(ctx, trip.ID, top.ID); err != nil {
		if errors.Is(err, dispatch.ErrTripTaken) {
			// A concurrent pass won the trip; a later pass re-evaluates
			// it if it somehow returns to unassigned.
			logger.Debug("Trip taken by concurrent assignment",
				logger.String("trip_id", trip.ID))
		} else {
			logger.Error("Failed to commit assignment",
				logger.String("trip_id", trip.ID),
				logger.String("driver_id", top.ID),
				logger.Err(err))
		}
		return models.AssignmentResult{TripID: trip.ID, Reason: dispatch.ReasonAssignFailed}
	}

	event := models.AssignedEvent{TripID: trip.ID, DriverID: top.ID, DriverName: top.Name}
	if err := uc.dispatchGW.PublishTripAssigned(ctx, event); err != nil {
		// The assignment is already committed; the event is best-effort.
		logger.Warn("Failed to publish assignment event",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	logger.Info("Trip assigned",
		logger.String("trip_id", trip.ID),
		logger.String("driver_id", top.ID),
		logger.Float64("score", candidates[0].Score))

	return models.AssignmentResult{
		TripID:     trip.ID,
		DriverID:   top.ID,
		DriverName: top.Name,
		Assigned:   true,
	}
}

// resolvePickup returns the trip's pickup coordinates, geocoding the
// pickup address when none are stored yet. A geocoding failure degrades
// to neutral-distance ranking instead of failing the trip.
func (uc *DispatchUC) resolvePickup(ctx context.Context, trip *models.Trip) *models.Location {
	if trip.PickupLocation != nil {
		return trip.PickupLocation
	}
	if trip.PickupAddress == "" {
		return nil
	}

	location, err := uc.dispatchGW.GeocodeAddress(ctx, trip.PickupAddress)
	if err != nil {
		logger.Warn("Pickup geocoding unavailable, ranking on neutral distance",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
		return nil
	}

	if err := uc.dispatchRepo.SavePickupLocation(ctx, trip.ID, *location); err != nil {
		logger.Warn("Failed to persist geocoded pickup",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}

	return location
}

func countAssigned(results []models.AssignmentResult) int {
	n := 0
	for _, r := range results {
		if r.Assigned {
			n++
		}
	}
	return n
}
