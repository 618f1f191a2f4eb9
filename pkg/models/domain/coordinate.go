package domain

import "fmt"

// Coordinate is a WGS84 position in decimal degrees. No altitude.
type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate validates the WGS84 degree ranges. The pure geometry
// functions do not re-validate; this is the boundary check.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lon)
}
