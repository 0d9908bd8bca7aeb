package gateway

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/internal/pkg/retry"
	"github.com/hhtransportationtx/dispatch/services/dispatch"
)

// MapsGateway handles interactions with the Google Maps geocoding API
type MapsGateway struct {
	client  *maps.Client
	retrier *retry.Retrier
}

// NewMapsGateway creates a new maps gateway with the given API key
func NewMapsGateway(apiKey string) (*MapsGateway, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &MapsGateway{
		client:  client,
		retrier: retry.NewWithDefaults(),
	}, nil
}

// GeocodeAddress resolves a street address to coordinates. Transient API
// errors are retried with backoff; an empty result set means the address
// cannot be resolved and maps to ErrGeocodeUnavailable.
func (g *MapsGateway) GeocodeAddress(ctx context.Context, address string) (*models.Location, error) {
	if address == "" {
		return nil, dispatch.ErrGeocodeUnavailable
	}

	var results []maps.GeocodingResult
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		r, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
		if err != nil {
			return fmt.Errorf("geocoding api error: %w", err)
		}
		results = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dispatch.ErrGeocodeUnavailable, err)
	}

	if len(results) == 0 {
		return nil, dispatch.ErrGeocodeUnavailable
	}

	location := results[0].Geometry.Location
	return &models.Location{
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}, nil
}
