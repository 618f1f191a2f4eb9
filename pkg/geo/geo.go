// Package geo provides the spherical-Earth geometry primitives the
// estimation and planning services are built on. All functions are pure
// and assume coordinates were range-checked at the boundary; invalid
// input propagates as NaN rather than panicking.
package geo

import (
	"math"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

// EarthRadiusKm is the mean Earth radius used for all geometry in this
// package (spherical model, no ellipsoid correction).
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometres (haversine).
func Distance(a, b domain.Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// Destination returns the point reached by travelling distanceKm from
// origin along the initial bearing (radians, clockwise from north).
func Destination(origin domain.Coordinate, bearingRad, distanceKm float64) domain.Coordinate {
	lat1 := radians(origin.Lat)
	lon1 := radians(origin.Lon)
	delta := distanceKm / EarthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(bearingRad))
	lon2 := lon1 + math.Atan2(
		math.Sin(bearingRad)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))

	return domain.Coordinate{
		Lat: degrees(lat2),
		Lon: normalizeLon(degrees(lon2)),
	}
}

// DefaultCircleSteps is the vertex count used when a caller does not
// care about the ring resolution.
const DefaultCircleSteps = 64

// Circle approximates the geodesic circle of the given radius as a
// closed ring of steps+1 vertices: a full bearing sweep at 2π/steps,
// with the first vertex repeated at the end. Fewer than 3 steps cannot
// enclose an area, so such values fall back to the default.
func Circle(center domain.Coordinate, radiusKm float64, steps int) []domain.Coordinate {
	if steps < 3 {
		steps = DefaultCircleSteps
	}
	ring := make([]domain.Coordinate, 0, steps+1)
	for i := 0; i < steps; i++ {
		bearing := 2 * math.Pi * float64(i) / float64(steps)
		ring = append(ring, Destination(center, bearing, radiusKm))
	}
	ring = append(ring, ring[0])
	return ring
}

// PointInPolygon classifies p against a simple polygon by ray casting:
// it counts crossings of the ray from p toward +infinity longitude
// against each edge; an odd count means inside. Vertices may be given
// open or closed, either works.
func PointInPolygon(p domain.Coordinate, poly []domain.Coordinate) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		vi, vj := poly[i], poly[j]
		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) {
			crossLon := (vj.Lon-vi.Lon)*(p.Lat-vi.Lat)/(vj.Lat-vi.Lat) + vi.Lon
			if p.Lon < crossLon {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func normalizeLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}
