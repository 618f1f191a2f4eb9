// Package adapters maps between domain values and their API
// representations.
package adapters

import (
	"github.com/de-tools/placement-atlas/pkg/models/api"
	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

func MapDomainCoordinateToAPI(c domain.Coordinate) api.Coordinate {
	return api.Coordinate{Lat: c.Lat, Lon: c.Lon}
}

func MapDomainNodeToAPI(n domain.Node, placed bool) api.Node {
	out := api.Node{
		ID:       n.ID,
		Name:     n.Name,
		Operator: n.Operator,
		Kind:     string(n.Kind),
		Vacancy:  string(n.Vacancy),
		Note:     n.Note,
		Placed:   placed,
	}
	if n.Coordinate != nil {
		c := MapDomainCoordinateToAPI(*n.Coordinate)
		out.Coordinate = &c
	}
	if n.ApproxCoordinate != nil {
		c := MapDomainCoordinateToAPI(*n.ApproxCoordinate)
		out.ApproxCoordinate = &c
	}
	return out
}

func MapDomainWorkloadToAPI(w domain.WorkloadProfile) api.Workload {
	return api.Workload{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		TypicalMs:   w.Inference.TypicalMs,
	}
}

func MapDomainBreakdownToAPI(b domain.Breakdown) api.Breakdown {
	terms := make([]api.BreakdownTerm, 0, len(b.Terms))
	for _, t := range b.Terms {
		terms = append(terms, api.BreakdownTerm{
			Name:        t.Name,
			Value:       t.Value,
			Description: t.Description,
		})
	}
	return api.Breakdown{Unit: b.Unit, Terms: terms, Total: b.Total}
}

func MapDomainEstimateToAPI(e domain.PlacementEstimate) api.PlacementEstimate {
	return api.PlacementEstimate{
		NodeID:         e.Node.ID,
		NodeName:       e.Node.Name,
		Kind:           string(e.Node.Kind),
		DistanceKm:     e.DistanceKm,
		LatencyMs:      e.LatencyMs,
		Latency:        MapDomainBreakdownToAPI(e.Latency),
		MonthlyCostUSD: e.MonthlyCostUSD,
		Cost:           MapDomainBreakdownToAPI(e.Cost),
	}
}

func MapDomainRingToAPI(r domain.Ring) api.Ring {
	polygon := make([]api.Coordinate, 0, len(r.Polygon))
	for _, p := range r.Polygon {
		polygon = append(polygon, MapDomainCoordinateToAPI(p))
	}
	return api.Ring{
		NodeID:      r.NodeID,
		Center:      MapDomainCoordinateToAPI(r.Center),
		RadiusKm:    r.RadiusKm,
		ThresholdMs: r.ThresholdMs,
		Color:       r.Color,
		Polygon:     polygon,
	}
}

// MapAPIRegionToDomain builds the planner region from a fill request:
// explicit polygon wins over bounds.
func MapAPIRegionToDomain(req api.RegionFillRequest) domain.Region {
	region := domain.Region{}
	if req.Bounds != nil {
		region.Bounds = domain.Bounds{
			North: req.Bounds.North,
			South: req.Bounds.South,
			East:  req.Bounds.East,
			West:  req.Bounds.West,
		}
	}
	for _, p := range req.Polygon {
		region.Polygon = append(region.Polygon, domain.Coordinate{Lat: p.Lat, Lon: p.Lon})
	}
	return region
}
