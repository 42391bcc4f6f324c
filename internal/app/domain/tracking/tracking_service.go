package tracking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/domain/rewards"
	"github.com/roamly/roamly/internal/app/geo"
	"github.com/roamly/roamly/internal/app/models"
	"github.com/roamly/roamly/internal/app/providers"
	"github.com/roamly/roamly/internal/pkg/scheduler"
)

const (
	catalogCacheKey = "attraction-catalog"
	nearbyCount     = 5
)

var _ Service = (*ServiceImpl)(nil)

// Service resolves user positions and drives the reward matcher after each
// new visit.
type Service interface {
	// Track resolves the user's current position, appends it to history,
	// runs the reward matcher and returns the new visit.
	Track(ctx context.Context, user *models.User) (models.VisitedLocation, error)

	// TrackBatch tracks every user against one catalog snapshot; results
	// preserve input order regardless of worker completion order.
	TrackBatch(ctx context.Context, users []*models.User) ([]models.VisitedLocation, error)

	// CurrentLocation returns the last known visit, tracking the user first
	// if their history is empty.
	CurrentLocation(ctx context.Context, user *models.User) (models.VisitedLocation, error)

	// NearbyAttractions returns the five catalog entries closest to the
	// user's current position, with distance and oracle reward points.
	NearbyAttractions(ctx context.Context, user *models.User) ([]models.NearbyAttraction, error)
}

type ServiceImpl struct {
	logger  *zap.Logger
	gps     providers.LocationProvider
	catalog providers.AttractionProvider
	rewards rewards.Service
	pool    scheduler.Config
	cache   *cache.Cache
}

func NewServiceImpl(gps providers.LocationProvider, catalog providers.AttractionProvider, rewardsService rewards.Service, pool scheduler.Config, catalogTTL time.Duration, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		gps:     gps,
		catalog: catalog,
		rewards: rewardsService,
		pool:    pool,
		cache:   cache.New(catalogTTL, 2*catalogTTL),
	}
}

// Track is the single-user path: no worker pool, same semantics as a
// one-element batch.
func (s *ServiceImpl) Track(ctx context.Context, user *models.User) (models.VisitedLocation, error) {
	ctx, span := otel.Tracer("TrackingService").Start(ctx, "Track")
	defer span.End()

	attractions, err := s.loadCatalog(ctx)
	if err != nil {
		return models.VisitedLocation{}, err
	}
	return s.trackOne(ctx, user, attractions)
}

// TrackBatch loads the catalog once, then fans the users out across the
// bounded pool. Each worker appends to its own user's history only.
func (s *ServiceImpl) TrackBatch(ctx context.Context, users []*models.User) ([]models.VisitedLocation, error) {
	ctx, span := otel.Tracer("TrackingService").Start(ctx, "TrackBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("users.count", len(users)))

	if len(users) == 0 {
		return []models.VisitedLocation{}, nil
	}

	attractions, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return scheduler.Run(ctx, users, s.pool, func(ctx context.Context, user *models.User) (models.VisitedLocation, error) {
		return s.trackOne(ctx, user, attractions)
	})
}

// CurrentLocation is lazy: an empty history triggers a real track.
func (s *ServiceImpl) CurrentLocation(ctx context.Context, user *models.User) (models.VisitedLocation, error) {
	if last, ok := user.LastVisitedLocation(); ok {
		return last, nil
	}
	return s.Track(ctx, user)
}

// NearbyAttractions sorts the catalog by distance to the user's current
// position and annotates the closest five with reward points.
func (s *ServiceImpl) NearbyAttractions(ctx context.Context, user *models.User) ([]models.NearbyAttraction, error) {
	ctx, span := otel.Tracer("TrackingService").Start(ctx, "NearbyAttractions")
	defer span.End()

	visit, err := s.CurrentLocation(ctx, user)
	if err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	// Sort a copy - the catalog snapshot is shared read-only.
	attractions := make([]models.Attraction, len(catalog))
	copy(attractions, catalog)
	sort.SliceStable(attractions, func(i, j int) bool {
		return geo.Distance(attractions[i].Location, visit.Location) < geo.Distance(attractions[j].Location, visit.Location)
	})
	if len(attractions) > nearbyCount {
		attractions = attractions[:nearbyCount]
	}

	nearby := make([]models.NearbyAttraction, 0, len(attractions))
	for _, a := range attractions {
		points, err := s.rewards.RewardPoints(ctx, a.ID, user.ID)
		if err != nil {
			return nil, err
		}
		nearby = append(nearby, models.NearbyAttraction{
			AttractionName:      a.Name,
			AttractionLatitude:  a.Location.Latitude,
			AttractionLongitude: a.Location.Longitude,
			UserLatitude:        visit.Location.Latitude,
			UserLongitude:       visit.Location.Longitude,
			DistanceMiles:       geo.Distance(a.Location, visit.Location),
			RewardPoints:        points,
		})
	}
	return nearby, nil
}

func (s *ServiceImpl) trackOne(ctx context.Context, user *models.User, attractions []models.Attraction) (models.VisitedLocation, error) {
	loc, err := s.gps.UserLocation(ctx, user.ID)
	if err != nil {
		return models.VisitedLocation{}, fmt.Errorf("resolving location for user %s: %w", user.Name, err)
	}

	visit := models.NewVisitedLocation(user.ID, loc, time.Now().UTC())
	user.AddVisitedLocation(visit)

	if err := s.rewards.CalculateRewards(ctx, user, attractions); err != nil {
		return models.VisitedLocation{}, err
	}
	return visit, nil
}

// loadCatalog memoizes the provider's catalog for a short TTL so repeated
// single-user calls don't refetch. A batch still resolves exactly one
// snapshot and hands it to every worker.
func (s *ServiceImpl) loadCatalog(ctx context.Context) ([]models.Attraction, error) {
	if cached, ok := s.cache.Get(catalogCacheKey); ok {
		return cached.([]models.Attraction), nil
	}
	attractions, err := s.catalog.Attractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading attraction catalog: %w", err)
	}
	s.cache.Set(catalogCacheKey, attractions, cache.DefaultExpiration)
	return attractions, nil
}
