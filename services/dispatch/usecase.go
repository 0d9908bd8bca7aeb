package dispatch

import (
	"context"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// DispatchUC defines the interface for dispatch business logic
type DispatchUC interface {
	// AssignTripByID assigns the best available driver to a single
	// unassigned trip (the manual "schedule one" action).
	AssignTripByID(ctx context.Context, tripID string) (models.AssignmentResult, error)

	// AssignUnassigned runs one greedy assignment pass over the current
	// unassigned-trip set, returning one result per processed trip in
	// processing order.
	AssignUnassigned(ctx context.Context) ([]models.AssignmentResult, error)
}
