package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

func TestDistance_SymmetricAndZeroOnIdentity(t *testing.T) {
	pairs := []struct {
		name string
		a, b domain.Coordinate
	}{
		{"dallas-fortworth", domain.Coordinate{Lat: 32.7767, Lon: -96.7970}, domain.Coordinate{Lat: 32.7555, Lon: -97.3308}},
		{"equator-meridian", domain.Coordinate{Lat: 0, Lon: 0}, domain.Coordinate{Lat: 0, Lon: 90}},
		{"antimeridian", domain.Coordinate{Lat: 45, Lon: 179.5}, domain.Coordinate{Lat: 45, Lon: -179.5}},
		{"poles", domain.Coordinate{Lat: 90, Lon: 0}, domain.Coordinate{Lat: -90, Lon: 0}},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			assert.Equal(t, Distance(p.a, p.b), Distance(p.b, p.a))
			assert.Zero(t, Distance(p.a, p.a))
			assert.Zero(t, Distance(p.b, p.b))
		})
	}
}

func TestDistance_OneDegreeOfLatitude(t *testing.T) {
	a := domain.Coordinate{Lat: 0, Lon: 0}
	b := domain.Coordinate{Lat: 1, Lon: 0}

	// One degree of arc on a 6371 km sphere.
	expected := EarthRadiusKm * math.Pi / 180
	assert.InDelta(t, expected, Distance(a, b), 1e-9)
}

func TestDestination_RoundTripsDistance(t *testing.T) {
	origin := domain.Coordinate{Lat: 32.78, Lon: -96.80}

	for _, bearing := range []float64{0, math.Pi / 3, math.Pi, 3 * math.Pi / 2} {
		dest := Destination(origin, bearing, 25)
		assert.InDelta(t, 25, Distance(origin, dest), 1e-9)
	}
}

func TestCircle_ClosedRingOnRadius(t *testing.T) {
	center := domain.Coordinate{Lat: 32.78, Lon: -96.80}
	ring := Circle(center, 10, 64)

	require.Len(t, ring, 65)
	assert.Equal(t, ring[0], ring[len(ring)-1])

	for _, vertex := range ring {
		assert.InDelta(t, 10, Distance(center, vertex), 1e-9)
	}
}

func TestCircle_TooFewStepsFallsBackToDefault(t *testing.T) {
	ring := Circle(domain.Coordinate{Lat: 0, Lon: 0}, 5, 1)
	assert.Len(t, ring, DefaultCircleSteps+1)
}

func TestCircle_ZeroRadiusDegeneratesToCenter(t *testing.T) {
	center := domain.Coordinate{Lat: 10, Lon: 20}
	for _, vertex := range Circle(center, 0, 8) {
		assert.InDelta(t, center.Lat, vertex.Lat, 1e-12)
		assert.InDelta(t, center.Lon, vertex.Lon, 1e-12)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []domain.Coordinate{
		{Lat: 32.0, Lon: -97.0},
		{Lat: 33.0, Lon: -97.0},
		{Lat: 33.0, Lon: -96.0},
		{Lat: 32.0, Lon: -96.0},
	}

	assert.True(t, PointInPolygon(domain.Coordinate{Lat: 32.5, Lon: -96.5}, square), "centroid should be inside")
	assert.False(t, PointInPolygon(domain.Coordinate{Lat: 40.0, Lon: -96.5}, square), "point north of the box")
	assert.False(t, PointInPolygon(domain.Coordinate{Lat: 32.5, Lon: -80.0}, square), "point east of the box")

	triangle := []domain.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 4, Lon: 0},
		{Lat: 0, Lon: 4},
	}
	assert.True(t, PointInPolygon(domain.Coordinate{Lat: 1, Lon: 1}, triangle))
	assert.False(t, PointInPolygon(domain.Coordinate{Lat: 3, Lon: 3}, triangle), "outside the hypotenuse")
}
