// Package gpsutil simulates the external GPS service: random positions with
// optional latency jitter, and a fixed attraction catalog.
package gpsutil

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/models"
)

// Latitudes are capped at the web-mercator limit so simulated users stay on
// renderable map tiles.
const (
	latitudeLimit  = 85.05112878
	longitudeLimit = 180.0
)

type Provider struct {
	logger          *zap.Logger
	simulateLatency bool
}

func New(logger *zap.Logger, simulateLatency bool) *Provider {
	return &Provider{logger: logger, simulateLatency: simulateLatency}
}

// UserLocation returns a random valid position for the user.
func (p *Provider) UserLocation(ctx context.Context, userID uuid.UUID) (models.Location, error) {
	if err := p.sleep(ctx); err != nil {
		return models.Location{}, err
	}
	lat := -latitudeLimit + rand.Float64()*(2*latitudeLimit)
	lon := -longitudeLimit + rand.Float64()*(2*longitudeLimit)
	loc, err := models.NewLocation(lat, lon)
	if err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

// Attractions returns the catalog snapshot. Callers treat it as read-only.
func (p *Provider) Attractions(ctx context.Context) ([]models.Attraction, error) {
	out := make([]models.Attraction, len(catalog))
	copy(out, catalog)
	return out, nil
}

// sleep simulates the 30-100ms response time of the real GPS service.
func (p *Provider) sleep(ctx context.Context) error {
	if !p.simulateLatency {
		return nil
	}
	delay := time.Duration(30+rand.Intn(70)) * time.Millisecond
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", models.ErrProviderUnavailable, ctx.Err())
	}
}
