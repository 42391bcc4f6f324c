// Package providers defines the external collaborators the engine consumes.
// The engine only sees these interfaces; the simulated implementations in the
// subpackages stand in for the real network-bound services.
package providers

import (
	"context"

	"github.com/google/uuid"

	"github.com/roamly/roamly/internal/app/models"
)

// LocationProvider resolves a user's current position. Treated as the
// dominant latency source for tracking.
type LocationProvider interface {
	UserLocation(ctx context.Context, userID uuid.UUID) (models.Location, error)
}

// AttractionProvider lists the attraction catalog.
type AttractionProvider interface {
	Attractions(ctx context.Context) ([]models.Attraction, error)
}

// RewardProvider is the reward-points oracle.
type RewardProvider interface {
	AttractionRewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error)
}

// TripPricer is the pricing oracle consumed by the trip-deals service.
type TripPricer interface {
	Price(ctx context.Context, apiKey string, userID uuid.UUID, adults, children, nights, rewardPoints int) ([]models.TripDeal, error)
}
