// Package rewardcentral simulates the reward-points oracle.
package rewardcentral

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/models"
)

type Provider struct {
	logger          *zap.Logger
	simulateLatency bool
}

func New(logger *zap.Logger, simulateLatency bool) *Provider {
	return &Provider{logger: logger, simulateLatency: simulateLatency}
}

// AttractionRewardPoints returns the point value for one (attraction, user)
// pairing, between 1 and 1000.
func (p *Provider) AttractionRewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error) {
	if p.simulateLatency {
		delay := time.Duration(1+rand.Intn(10)) * time.Millisecond
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return 0, fmt.Errorf("%w: %w", models.ErrProviderUnavailable, ctx.Err())
		}
	}
	return rand.Intn(1000) + 1, nil
}
