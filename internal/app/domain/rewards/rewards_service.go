package rewards

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/geo"
	"github.com/roamly/roamly/internal/app/models"
	"github.com/roamly/roamly/internal/app/observability/metrics"
	"github.com/roamly/roamly/internal/app/providers"
	"github.com/roamly/roamly/internal/pkg/scheduler"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the reward-matching contract: award points for visits near
// catalog attractions, at most once per (user, attraction) pair.
type Service interface {
	// CalculateRewards matches one user's visit history against the given
	// catalog snapshot and appends any newly earned rewards.
	CalculateRewards(ctx context.Context, user *models.User, attractions []models.Attraction) error

	// CalculateRewardsBatch fetches the catalog once and runs CalculateRewards
	// for every user across the worker pool.
	CalculateRewardsBatch(ctx context.Context, users []*models.User) error

	// IsWithinAttractionProximity is the loose "plausibly nearby" predicate,
	// independent of the matching loop's proximity buffer.
	IsWithinAttractionProximity(attraction models.Attraction, loc models.Location) bool

	// RewardPoints exposes the oracle's point value for a pairing.
	RewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error)

	SetProximityBuffer(miles float64)
	ResetProximityBuffer()
}

// ServiceImpl matches visits to attractions using the geodesic distance in
// the geo package and the reward-points oracle.
type ServiceImpl struct {
	logger      *zap.Logger
	attractions providers.AttractionProvider
	oracle      providers.RewardProvider
	pool        scheduler.Config

	defaultProximityBuffer   float64
	attractionProximityRange float64

	mu              sync.RWMutex
	proximityBuffer float64
}

// Options carries the tunables the config layer resolves.
type Options struct {
	ProximityBufferMiles     float64
	AttractionProximityMiles float64
	Pool                     scheduler.Config
}

func NewServiceImpl(attractions providers.AttractionProvider, oracle providers.RewardProvider, opts Options, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:                   logger,
		attractions:              attractions,
		oracle:                   oracle,
		pool:                     opts.Pool,
		defaultProximityBuffer:   opts.ProximityBufferMiles,
		attractionProximityRange: opts.AttractionProximityMiles,
		proximityBuffer:          opts.ProximityBufferMiles,
	}
}

// SetProximityBuffer overrides the matching distance threshold.
func (s *ServiceImpl) SetProximityBuffer(miles float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proximityBuffer = miles
}

// ResetProximityBuffer restores the configured default.
func (s *ServiceImpl) ResetProximityBuffer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proximityBuffer = s.defaultProximityBuffer
}

func (s *ServiceImpl) buffer() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.proximityBuffer
}

// CalculateRewards walks the user's history in insertion order against the
// catalog in catalog order. A guard set of already-rewarded attraction names
// enforces the at-most-one-per-attraction invariant, including within this
// same pass. An oracle failure aborts the pass and propagates; rewards
// appended before the failure were correctly earned and stay.
func (s *ServiceImpl) CalculateRewards(ctx context.Context, user *models.User, attractions []models.Attraction) error {
	ctx, span := otel.Tracer("RewardsService").Start(ctx, "CalculateRewards")
	defer span.End()

	// Snapshots: appends from elsewhere must not disturb this pass.
	visited := user.VisitedLocations()
	existing := user.Rewards()

	rewarded := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		rewarded[r.Attraction.Name] = struct{}{}
	}

	buffer := s.buffer()
	awarded := 0
	for _, visit := range visited {
		for _, attraction := range attractions {
			if _, ok := rewarded[attraction.Name]; ok {
				continue
			}
			if geo.Distance(attraction.Location, visit.Location) > buffer {
				continue
			}
			points, err := s.oracle.AttractionRewardPoints(ctx, attraction.ID, user.ID)
			if err != nil {
				return fmt.Errorf("fetching reward points for attraction %s: %w", attraction.Name, err)
			}
			user.AddReward(models.UserReward{
				VisitedLocation: visit,
				Attraction:      attraction,
				Points:          points,
			})
			rewarded[attraction.Name] = struct{}{}
			awarded++
		}
	}

	span.SetAttributes(attribute.Int("rewards.awarded", awarded))
	metrics.RecordRewards(ctx, awarded)
	if awarded > 0 {
		s.logger.Debug("Rewards awarded",
			zap.String("userName", user.Name),
			zap.Int("count", awarded))
	}
	return nil
}

// CalculateRewardsBatch loads one catalog snapshot and shares it read-only
// across all workers so every user is matched against the same catalog.
func (s *ServiceImpl) CalculateRewardsBatch(ctx context.Context, users []*models.User) error {
	ctx, span := otel.Tracer("RewardsService").Start(ctx, "CalculateRewardsBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("users.count", len(users)))

	if len(users) == 0 {
		return nil
	}

	attractions, err := s.attractions.Attractions(ctx)
	if err != nil {
		return fmt.Errorf("loading attraction catalog: %w", err)
	}

	_, err = scheduler.Run(ctx, users, s.pool, func(ctx context.Context, user *models.User) (struct{}, error) {
		return struct{}{}, s.CalculateRewards(ctx, user, attractions)
	})
	return err
}

// IsWithinAttractionProximity reports whether the location is inside the
// fixed attraction proximity range.
func (s *ServiceImpl) IsWithinAttractionProximity(attraction models.Attraction, loc models.Location) bool {
	return geo.Distance(attraction.Location, loc) <= s.attractionProximityRange
}

// RewardPoints returns the oracle's point value for the pairing.
func (s *ServiceImpl) RewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error) {
	points, err := s.oracle.AttractionRewardPoints(ctx, attractionID, userID)
	if err != nil {
		return 0, fmt.Errorf("fetching reward points: %w", err)
	}
	return points, nil
}
