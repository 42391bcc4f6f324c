// Package geo holds the pure distance math shared by the reward matcher and
// the nearby-attractions query. Everything here is stateless and safe for
// concurrent use.
package geo

import (
	"math"

	"github.com/roamly/roamly/internal/app/models"
)

const statuteMilesPerNauticalMile = 1.15077945

// Distance returns the statute miles between two coordinates using the
// spherical law of cosines. Identical coordinates return exactly 0.
func Distance(a, b models.Location) float64 {
	// The cosine sum below can land one ulp short of 1.0 at some latitudes,
	// turning a zero distance into a tiny positive one.
	if a.Latitude == b.Latitude && a.Longitude == b.Longitude {
		return 0
	}

	lat1 := toRadians(a.Latitude)
	lon1 := toRadians(a.Longitude)
	lat2 := toRadians(b.Latitude)
	lon2 := toRadians(b.Longitude)

	cosAngle := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon1-lon2)
	// Floating point can overshoot 1.0 for equal or antipodal points, which
	// would push Acos into NaN territory.
	cosAngle = math.Min(1, math.Max(-1, cosAngle))

	angle := math.Acos(cosAngle)
	nauticalMiles := 60 * toDegrees(angle)
	return statuteMilesPerNauticalMile * nauticalMiles
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
