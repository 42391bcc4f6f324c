package user

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/models"
)

// Latitude cap matches the GPS simulator's web-mercator limit.
const seedLatitudeLimit = 85.05112878

// Seed populates the registry with n synthetic users, each carrying three
// random historical visits from the past 30 days.
func (r *Registry) Seed(n int) {
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("internalUser%d", i)
		if _, err := r.Get(name); err == nil {
			continue
		}
		u, err := r.GetOrCreate(name, "000", name+"@roamly.com")
		if err != nil {
			continue
		}
		seedLocationHistory(u)
	}
	r.logger.Debug("Seeded internal users", zap.Int("count", n))
}

func seedLocationHistory(u *models.User) {
	for i := 0; i < 3; i++ {
		loc := models.Location{
			Latitude:  -seedLatitudeLimit + rand.Float64()*(2*seedLatitudeLimit),
			Longitude: -180 + rand.Float64()*360,
		}
		visitedAt := time.Now().UTC().AddDate(0, 0, -rand.Intn(30))
		u.AddVisitedLocation(models.NewVisitedLocation(u.ID, loc, visitedAt))
	}
}
