package tracker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/domain/user"
	"github.com/roamly/roamly/internal/app/models"
)

// countingTracker counts sweeps without touching real providers.
type countingTracker struct {
	sweeps atomic.Int32
}

func (c *countingTracker) Track(ctx context.Context, u *models.User) (models.VisitedLocation, error) {
	return models.VisitedLocation{}, nil
}

func (c *countingTracker) TrackBatch(ctx context.Context, users []*models.User) ([]models.VisitedLocation, error) {
	c.sweeps.Add(1)
	return make([]models.VisitedLocation, len(users)), nil
}

func (c *countingTracker) CurrentLocation(ctx context.Context, u *models.User) (models.VisitedLocation, error) {
	return models.VisitedLocation{}, nil
}

func (c *countingTracker) NearbyAttractions(ctx context.Context, u *models.User) ([]models.NearbyAttraction, error) {
	return nil, nil
}

func TestTrackerSweepsUntilCancelled(t *testing.T) {
	registry := user.NewRegistry(zap.NewNop())
	registry.Seed(3)

	tracking := &countingTracker{}
	tr := New(registry, tracking, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tr.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return tracking.sweeps.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tracker did not stop after cancel")
	}
}
