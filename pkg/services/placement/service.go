// Package placement is the orchestration facade over the pure models:
// it turns (point of use, workload, candidate nodes) into per-node
// latency and cost estimates. Stateless; results are recomputed per
// call and never cached.
package placement

import (
	"fmt"

	"github.com/de-tools/placement-atlas/pkg/geo"
	"github.com/de-tools/placement-atlas/pkg/models/domain"
	"github.com/de-tools/placement-atlas/pkg/services/cost"
	"github.com/de-tools/placement-atlas/pkg/services/latency"
)

type Service interface {
	// Estimate scores a single node against the point of use.
	Estimate(pointOfUse domain.Coordinate, node domain.Node, workload domain.WorkloadProfile) (domain.PlacementEstimate, error)
	// Compare scores every locatable node; nodes with no position at
	// all are skipped.
	Compare(pointOfUse domain.Coordinate, nodes []domain.Node, workload domain.WorkloadProfile) []domain.PlacementEstimate
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) Estimate(
	pointOfUse domain.Coordinate,
	node domain.Node,
	workload domain.WorkloadProfile,
) (domain.PlacementEstimate, error) {
	loc, ok := node.Location()
	if !ok {
		return domain.PlacementEstimate{}, fmt.Errorf("node %s has no known position", node.ID)
	}

	distance := geo.Distance(pointOfUse, loc)
	usage := cost.UsageFor(workload.Flags)

	var latencyBreakdown domain.Breakdown
	if node.Kind == domain.NodeKindCloud {
		latencyBreakdown = latency.CloudBreakdown(distance, workload.Weights, workload.Inference.TypicalMs)
	} else {
		latencyBreakdown = latency.EdgeBreakdown(distance, workload.Inference.TypicalMs)
	}
	costBreakdown := cost.ForKind(node, usage, workload.Flags)

	return domain.PlacementEstimate{
		Node:           node,
		DistanceKm:     distance,
		LatencyMs:      latencyBreakdown.Total,
		Latency:        latencyBreakdown,
		MonthlyCostUSD: costBreakdown.Total,
		Cost:           costBreakdown,
	}, nil
}

func (s *service) Compare(
	pointOfUse domain.Coordinate,
	nodes []domain.Node,
	workload domain.WorkloadProfile,
) []domain.PlacementEstimate {
	out := make([]domain.PlacementEstimate, 0, len(nodes))
	for _, n := range nodes {
		est, err := s.Estimate(pointOfUse, n, workload)
		if err != nil {
			continue
		}
		out = append(out, est)
	}
	return out
}
