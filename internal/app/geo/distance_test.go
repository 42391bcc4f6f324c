package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roamly/roamly/internal/app/models"
)

func TestDistanceIdenticalCoordinates(t *testing.T) {
	tests := []struct {
		name string
		loc  models.Location
	}{
		{"Origin", models.Location{Latitude: 0, Longitude: 0}},
		{"Mid latitude", models.Location{Latitude: 45.5, Longitude: -122.6}},
		{"Near pole", models.Location{Latitude: 89.9, Longitude: 10}},
		{"Negative hemisphere", models.Location{Latitude: -33.86, Longitude: 151.2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Distance(tc.loc, tc.loc)
			assert.False(t, math.IsNaN(d), "identical coordinates must not produce NaN")
			assert.Equal(t, 0.0, d)
		})
	}
}

func TestDistanceZeroAcrossLatitudes(t *testing.T) {
	// At some latitudes the spherical-law cosine sum rounds one ulp below
	// 1.0, which previously produced a tiny nonzero distance for equal
	// coordinates. Sweep the full latitude range to lock the exact-zero
	// behavior in.
	for lat := -90.0; lat <= 90.0; lat += 0.01 {
		loc := models.Location{Latitude: lat, Longitude: 151.2}
		if d := Distance(loc, loc); d != 0 {
			t.Fatalf("Distance(loc, loc) = %v at latitude %v, want exactly 0", d, lat)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := models.Location{Latitude: 33.817595, Longitude: -117.922008}
	b := models.Location{Latitude: 40.741112, Longitude: -73.989723}

	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistanceTriangleSanity(t *testing.T) {
	a := models.Location{Latitude: 10, Longitude: 10}
	b := models.Location{Latitude: -50, Longitude: 120}

	assert.LessOrEqual(t, Distance(a, a), Distance(a, b))
}

func TestDistanceKnownValue(t *testing.T) {
	// One degree of longitude on the equator is 60 nautical miles.
	a := models.Location{Latitude: 0, Longitude: 0}
	b := models.Location{Latitude: 0, Longitude: 1}

	assert.InDelta(t, 60*1.15077945, Distance(a, b), 1e-6)
}

func TestDistanceSmallOffset(t *testing.T) {
	// 0.001 degrees of longitude on the equator is roughly 0.07 statute miles.
	a := models.Location{Latitude: 0, Longitude: 0}
	b := models.Location{Latitude: 0, Longitude: 0.001}

	d := Distance(a, b)
	assert.Greater(t, d, 0.05)
	assert.Less(t, d, 0.08)
}

func TestDistanceAntipodal(t *testing.T) {
	a := models.Location{Latitude: 0, Longitude: 0}
	b := models.Location{Latitude: 0, Longitude: 180}

	d := Distance(a, b)
	assert.False(t, math.IsNaN(d))
	// Half the circumference, ~12,430 statute miles.
	assert.InDelta(t, 180*60*1.15077945, d, 1e-6)
}
