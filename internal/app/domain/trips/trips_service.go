package trips

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/models"
	"github.com/roamly/roamly/internal/app/providers"
)

var _ Service = (*ServiceImpl)(nil)

// Service quotes trip deals for a user based on their preferences and
// accumulated reward points.
type Service interface {
	TripDeals(ctx context.Context, user *models.User) ([]models.TripDeal, error)
}

type ServiceImpl struct {
	logger *zap.Logger
	pricer providers.TripPricer
	apiKey string
}

func NewServiceImpl(pricer providers.TripPricer, apiKey string, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		pricer: pricer,
		apiKey: apiKey,
	}
}

// TripDeals queries the pricing oracle with the user's cumulative reward
// points, then pads or trims the quote to the requested ticket quantity.
func (s *ServiceImpl) TripDeals(ctx context.Context, user *models.User) ([]models.TripDeal, error) {
	prefs := user.Preferences
	points := user.RewardPoints()

	deals, err := s.pricer.Price(ctx, s.apiKey, user.ID,
		prefs.NumberOfAdults, prefs.NumberOfChildren, prefs.TripDuration, points)
	if err != nil {
		return nil, fmt.Errorf("pricing trip for user %s: %w", user.Name, err)
	}

	deals = adjustQuantity(deals, prefs.TicketQuantity)
	user.SetTripDeals(deals)

	s.logger.Debug("Trip deals quoted",
		zap.String("userName", user.Name),
		zap.Int("deals", len(deals)),
		zap.Int("rewardPoints", points))
	return deals, nil
}

// adjustQuantity cycles the quote to reach the desired count, or trims it.
func adjustQuantity(deals []models.TripDeal, desired int) []models.TripDeal {
	if len(deals) == 0 || desired <= 0 {
		return deals
	}
	if len(deals) > desired {
		return deals[:desired]
	}
	extended := make([]models.TripDeal, 0, desired)
	for len(extended) < desired {
		extended = append(extended, deals...)
	}
	return extended[:desired]
}
