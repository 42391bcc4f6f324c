// Package trippricer simulates the trip pricing oracle: five named providers
// with prices derived from the party, the trip length and a reward-point
// discount.
package trippricer

import (
	"context"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/models"
)

var providerNames = []string{
	"Holiday Travels",
	"Enterprize Ventures Limited",
	"Sunny Days",
	"FlyAway Trips",
	"United Partners Vacations",
	"Dream Trips",
	"Live Free",
	"Dancing Waters",
	"AdventureCo",
	"Cure-Your-Boredom",
}

const dealsPerQuote = 5

type Pricer struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Pricer {
	return &Pricer{logger: logger}
}

// Price quotes trip deals for the user. Reward points act as a flat discount,
// floored at a free trip.
func (p *Pricer) Price(ctx context.Context, apiKey string, userID uuid.UUID, adults, children, nights, rewardPoints int) ([]models.TripDeal, error) {
	deals := make([]models.TripDeal, 0, dealsPerQuote)
	for i := 0; i < dealsPerQuote; i++ {
		nightly := 120.0 + rand.Float64()*880.0
		price := nightly*float64(nights) + float64(adults)*250 + float64(children)*120 - float64(rewardPoints)
		price = math.Max(0, price)
		deals = append(deals, models.TripDeal{
			Name:   providerNames[rand.Intn(len(providerNames))],
			TripID: uuid.New(),
			Price:  math.Round(price*100) / 100,
		})
	}
	return deals, nil
}
