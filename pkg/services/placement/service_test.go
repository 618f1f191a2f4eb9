package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/placement-atlas/pkg/geo"
	"github.com/de-tools/placement-atlas/pkg/models/domain"
	"github.com/de-tools/placement-atlas/pkg/services/latency"
)

var pointOfUse = domain.Coordinate{Lat: 32.7767, Lon: -96.7970}

func workload() domain.WorkloadProfile {
	return domain.WorkloadProfile{
		ID: "realtime-inference",
		Weights: domain.LatencyWeights{
			LoadBalancer:        1,
			TLSHandshake:        1,
			Orchestration:       1,
			QueueingMultitenant: 1,
			NoisyNeighbor:       1,
			LongHaul:            1,
		},
		Inference: domain.InferenceTime{MinMs: 20, TypicalMs: 45, MaxMs: 120},
	}
}

func TestEstimate_EdgeNode(t *testing.T) {
	loc := domain.Coordinate{Lat: 32.8008, Lon: -96.8194}
	node := domain.Node{ID: "colo-1", Kind: domain.NodeKindColocation, Coordinate: &loc}

	est, err := NewService().Estimate(pointOfUse, node, workload())
	require.NoError(t, err)

	assert.Equal(t, "colo-1", est.Node.ID)
	assert.InDelta(t, geo.Distance(pointOfUse, loc), est.DistanceKm, 1e-12)
	assert.Equal(t, est.Latency.Total, est.LatencyMs)
	assert.Equal(t, est.Cost.Total, est.MonthlyCostUSD)

	// Edge path: three latency terms, no cloud hop stack.
	require.Len(t, est.Latency.Terms, 3)
	_, hasLease := est.Cost.Term("power_lease")
	assert.True(t, hasLease)
}

func TestEstimate_CloudNodeUsesApproxPosition(t *testing.T) {
	approx := domain.Coordinate{Lat: 38.9, Lon: -77.4}
	node := domain.Node{ID: "aws-us-east-1", Kind: domain.NodeKindCloud, ApproxCoordinate: &approx}
	w := workload()

	est, err := NewService().Estimate(pointOfUse, node, w)
	require.NoError(t, err)

	distance := geo.Distance(pointOfUse, approx)
	assert.InDelta(t, distance, est.DistanceKm, 1e-12)
	assert.Equal(t, latency.Cloud(distance, w.Weights, w.Inference.TypicalMs), est.LatencyMs)
	require.Len(t, est.Latency.Terms, 14)
	_, hasGPU := est.Cost.Term("gpu_compute")
	assert.True(t, hasGPU)
}

func TestEstimate_UnlocatableNode(t *testing.T) {
	_, err := NewService().Estimate(pointOfUse, domain.Node{ID: "mystery"}, workload())
	assert.EqualError(t, err, "node mystery has no known position")
}

func TestCompare_SkipsUnlocatableNodes(t *testing.T) {
	loc := domain.Coordinate{Lat: 32.8008, Lon: -96.8194}
	nodes := []domain.Node{
		{ID: "colo-1", Kind: domain.NodeKindColocation, Coordinate: &loc},
		{ID: "mystery"},
		{ID: "edge-1", Kind: domain.NodeKindEdgeContainer, Coordinate: &loc},
	}

	estimates := NewService().Compare(pointOfUse, nodes, workload())

	require.Len(t, estimates, 2)
	assert.Equal(t, "colo-1", estimates[0].Node.ID)
	assert.Equal(t, "edge-1", estimates[1].Node.ID)
}
