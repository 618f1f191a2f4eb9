// Package planner implements region fill: deriving a hexagonally packed
// set of candidate edge-container positions whose coverage disks tile a
// region at a target latency radius.
package planner

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/de-tools/placement-atlas/pkg/geo"
	"github.com/de-tools/placement-atlas/pkg/models/domain"
	"github.com/de-tools/placement-atlas/pkg/services/rings"
)

const (
	// KmPerDegree approximates one degree of latitude as 111 km. The
	// same factor is applied to longitude without cos(latitude)
	// correction, which overpacks east-west at higher latitudes; this
	// is kept for compatibility with coverage counts in shared state.
	KmPerDegree = 111.0

	// DefaultMaxCandidates bounds the sweep so a tiny radius over a
	// huge region cannot loop unboundedly.
	DefaultMaxCandidates = 10000
)

// DefaultRegion is the Dallas–Fort Worth metro rectangle used when a
// fill request names no region.
var DefaultRegion = domain.Bounds{North: 33.3, South: 32.6, East: -96.5, West: -97.4}

type Mode string

const (
	// ModeCount reports candidate count and region area without
	// producing node records.
	ModeCount Mode = "count"
	// ModeMaterialize emits an edge-container node per candidate.
	ModeMaterialize Mode = "materialize"
)

// Request describes one region-fill invocation.
type Request struct {
	ThresholdMs      int
	RadiusMultiplier float64
	Region           domain.Region
	Mode             Mode

	// MaxCandidates caps the sweep; zero means DefaultMaxCandidates.
	MaxCandidates int
}

// Result is the outcome of a fill. Nodes is nil in count mode.
type Result struct {
	Count     int
	RadiusKm  float64
	SpacingKm float64
	AreaKm2   float64
	Nodes     []domain.Node
}

// Fill sweeps the region with a hex lattice of spacing radius×√3 and
// returns the candidates that fall inside it. An unconfigured threshold
// or a zero-area region yields an empty result with a nil error; a
// degenerate polygon or an exceeded candidate cap is an error.
func Fill(req Request) (Result, error) {
	if n := len(req.Region.Polygon); n > 0 && n < 3 {
		return Result{}, fmt.Errorf("region polygon needs at least 3 vertices, got %d", n)
	}

	radius, ok := rings.RadiusForThreshold(req.ThresholdMs, req.RadiusMultiplier)
	if !ok || radius <= 0 {
		return Result{}, nil
	}

	maxCandidates := req.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	box := req.Region.Box()
	if box.North <= box.South || box.East <= box.West {
		return Result{}, nil
	}

	// Adjacent hex lattice rows sit radius×√3 apart so disks of that
	// radius touch along the lattice.
	spacingKm := radius * math.Sqrt(3)
	step := spacingKm / KmPerDegree
	if step <= 0 {
		return Result{}, nil
	}

	var accepted []domain.Coordinate
	visited := 0
	for lat, row := box.South, 0; lat <= box.North; lat, row = lat+step, row+1 {
		lon := box.West
		if row%2 == 1 {
			lon += step / 2
		}
		for ; lon <= box.East; lon += step {
			visited++
			if visited > maxCandidates {
				return Result{}, fmt.Errorf(
					"region fill exceeded candidate cap of %d (radius %.3f km over %s)",
					maxCandidates, radius, describeBounds(box))
			}
			if len(req.Region.Polygon) > 0 && !geo.PointInPolygon(domain.Coordinate{Lat: lat, Lon: lon}, req.Region.Polygon) {
				continue
			}
			accepted = append(accepted, domain.Coordinate{Lat: lat, Lon: lon})
		}
	}

	res := Result{
		Count:     len(accepted),
		RadiusKm:  radius,
		SpacingKm: spacingKm,
		AreaKm2:   regionAreaKm2(req.Region, box),
	}

	if req.Mode == ModeMaterialize {
		res.Nodes = make([]domain.Node, 0, len(accepted))
		for i, c := range accepted {
			res.Nodes = append(res.Nodes, NewGridSiteNode(c, fmt.Sprintf(
				"auto-placed for %d ms coverage (site %d of %d)",
				req.ThresholdMs, i+1, len(accepted))))
		}
	}
	return res, nil
}

// NewGridSiteNode builds a user-placeable edge-container node at the
// given position. Pricing is left to defaults.
func NewGridSiteNode(c domain.Coordinate, note string) domain.Node {
	coord := c
	return domain.Node{
		ID:         "gridsite-" + uuid.NewString(),
		Name:       fmt.Sprintf("GridSite %.3f,%.3f", c.Lat, c.Lon),
		Operator:   "GridSite",
		Kind:       domain.NodeKindEdgeContainer,
		Coordinate: &coord,
		Vacancy:    domain.VacancyHigh,
		Note:       note,
	}
}

// regionAreaKm2 approximates the region's area under the same flat
// km-per-degree model the sweep uses.
func regionAreaKm2(region domain.Region, box domain.Bounds) float64 {
	if len(region.Polygon) >= 3 {
		return shoelaceDeg2(region.Polygon) * KmPerDegree * KmPerDegree
	}
	return (box.North - box.South) * (box.East - box.West) * KmPerDegree * KmPerDegree
}

// shoelaceDeg2 returns the polygon area in square degrees.
func shoelaceDeg2(poly []domain.Coordinate) float64 {
	sum := 0.0
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		sum += poly[j].Lon*poly[i].Lat - poly[i].Lon*poly[j].Lat
		j = i
	}
	return math.Abs(sum) / 2
}

func describeBounds(b domain.Bounds) string {
	return fmt.Sprintf("[%.3f..%.3f]x[%.3f..%.3f]", b.South, b.North, b.West, b.East)
}
