package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Location is an immutable coordinate pair. Build one through NewLocation so
// out-of-range values never reach the distance math.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewLocation validates latitude/longitude ranges before constructing a Location.
func NewLocation(latitude, longitude float64) (Location, error) {
	if latitude < -90 || latitude > 90 {
		return Location{}, fmt.Errorf("latitude %f out of range [-90,90]: %w", latitude, ErrInvalidCoordinate)
	}
	if longitude < -180 || longitude > 180 {
		return Location{}, fmt.Errorf("longitude %f out of range [-180,180]: %w", longitude, ErrInvalidCoordinate)
	}
	return Location{Latitude: latitude, Longitude: longitude}, nil
}

// VisitedLocation records where a user was at a point in time. Once appended
// to a user's history it is never mutated or removed.
type VisitedLocation struct {
	UserID      uuid.UUID `json:"userId"`
	Location    Location  `json:"location"`
	TimeVisited time.Time `json:"timeVisited"`
}

// Attraction is a catalog entry. The catalog is fetched once per batch and
// shared read-only across workers.
type Attraction struct {
	ID       uuid.UUID `json:"attractionId"`
	Name     string    `json:"attractionName"`
	City     string    `json:"city"`
	State    string    `json:"state"`
	Location Location  `json:"location"`
}

// UserReward ties the visit that earned it to the attraction and the points
// the reward oracle assigned. Created at most once per (user, attraction).
type UserReward struct {
	VisitedLocation VisitedLocation `json:"visitedLocation"`
	Attraction      Attraction      `json:"attraction"`
	Points          int             `json:"rewardPoints"`
}

// NearbyAttraction is the response shape for the nearby-attractions query:
// one of the five closest catalog entries to the user's current position.
type NearbyAttraction struct {
	AttractionName      string  `json:"attractionName"`
	AttractionLatitude  float64 `json:"attractionLatitude"`
	AttractionLongitude float64 `json:"attractionLongitude"`
	UserLatitude        float64 `json:"userLatitude"`
	UserLongitude       float64 `json:"userLongitude"`
	DistanceMiles       float64 `json:"distanceMiles"`
	RewardPoints        int     `json:"rewardPoints"`
}

// TripDeal is a priced trip offer returned by the pricing oracle.
type TripDeal struct {
	Name   string    `json:"name"`
	TripID uuid.UUID `json:"tripId"`
	Price  float64   `json:"price"`
}
