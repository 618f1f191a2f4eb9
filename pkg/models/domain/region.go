package domain

// Bounds is a latitude/longitude rectangle.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Region is the area a fill request covers: a rectangle, or an
// arbitrary simple polygon when Polygon is non-empty.
type Region struct {
	Bounds  Bounds
	Polygon []Coordinate
}

// Box returns the region's bounding rectangle: the polygon's envelope
// when a polygon is set, otherwise the explicit bounds.
func (r Region) Box() Bounds {
	if len(r.Polygon) == 0 {
		return r.Bounds
	}
	b := Bounds{
		North: r.Polygon[0].Lat,
		South: r.Polygon[0].Lat,
		East:  r.Polygon[0].Lon,
		West:  r.Polygon[0].Lon,
	}
	for _, p := range r.Polygon[1:] {
		if p.Lat > b.North {
			b.North = p.Lat
		}
		if p.Lat < b.South {
			b.South = p.Lat
		}
		if p.Lon > b.East {
			b.East = p.Lon
		}
		if p.Lon < b.West {
			b.West = p.Lon
		}
	}
	return b
}
