// Package tracker runs the periodic all-users tracking sweep.
package tracker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/domain/tracking"
	"github.com/roamly/roamly/internal/app/domain/user"
	"github.com/roamly/roamly/internal/app/observability/metrics"
)

type Tracker struct {
	logger   *zap.Logger
	registry *user.Registry
	tracking tracking.Service
	interval time.Duration
}

func New(registry *user.Registry, trackingService tracking.Service, interval time.Duration, logger *zap.Logger) *Tracker {
	return &Tracker{
		logger:   logger,
		registry: registry,
		tracking: trackingService,
		interval: interval,
	}
}

// Run tracks every registered user each interval until the context is
// cancelled. Intended to be launched as a goroutine from main.
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Info("Tracker started", zap.Duration("interval", t.interval))
	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Tracker stopping")
			return
		case <-ticker.C:
			t.sweep(ctx)
		}
	}
}

func (t *Tracker) sweep(ctx context.Context) {
	users := t.registry.All()
	start := time.Now()

	_, err := t.tracking.TrackBatch(ctx, users)
	elapsed := time.Since(start)
	if err != nil {
		t.logger.Error("Tracking sweep failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return
	}

	metrics.RecordSweep(ctx, len(users), elapsed)
	t.logger.Info("Tracking sweep complete",
		zap.Int("users", len(users)),
		zap.Duration("elapsed", elapsed))
}
