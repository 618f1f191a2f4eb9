package domain

// Ring is a derived visualization artifact: the geodesic circle around
// a node at the coverage radius of an RTT threshold. Ephemeral,
// recomputed on every relevant state change.
type Ring struct {
	NodeID      string
	Center      Coordinate
	RadiusKm    float64
	ThresholdMs int
	Color       string
	Polygon     []Coordinate
}
