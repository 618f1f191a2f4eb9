package latency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

func allOnes() domain.LatencyWeights {
	return domain.LatencyWeights{
		LoadBalancer:        1,
		TLSHandshake:        1,
		Orchestration:       1,
		GPUColdStart:        1,
		ModelLoad:           1,
		QueueingMultitenant: 1,
		NoisyNeighbor:       1,
		DataRetrieval:       1,
		LongHaul:            1,
		ServerlessOverhead:  1,
	}
}

func TestPropagationRTT(t *testing.T) {
	// 100 km one way: 2 * (100 * 1.2 / 200000) * 1000 = 1.2 ms.
	assert.InDelta(t, 1.2, PropagationRTT(100), 1e-12)
	assert.Zero(t, PropagationRTT(0))
}

func TestCloud_ZeroDistanceZeroWeights(t *testing.T) {
	// Only the unweighted fixed hops and inference remain:
	// gateway 1.0 + vpc 0.6 + inference 50 = 51.6.
	total := Cloud(0, domain.LatencyWeights{}, 50)
	assert.InDelta(t, 51.6, total, 1e-9)
}

func TestEdge_ZeroDistance(t *testing.T) {
	assert.InDelta(t, 50.5, Edge(0, 50), 1e-9)
}

func TestEdgeAlwaysBeatsCloudOnEqualDistance(t *testing.T) {
	weights := allOnes()
	for _, d := range []float64{0, 1, 50, 500, 5000} {
		assert.Less(t, Edge(d, 45), Cloud(d, weights, 45),
			"edge path must structurally undercut the cloud path at distance %v", d)
	}
}

func TestCloudBreakdown_SumEqualsTotal(t *testing.T) {
	b := CloudBreakdown(1234.5, allOnes(), 45)

	require.Len(t, b.Terms, 14)
	sum := 0.0
	for _, term := range b.Terms {
		sum += term.Value
	}
	assert.Equal(t, sum, b.Total, "breakdown terms must sum to the total exactly")
	assert.Equal(t, "ms", b.Unit)
}

func TestEdgeBreakdown_SumEqualsTotal(t *testing.T) {
	b := EdgeBreakdown(321.7, 45)

	require.Len(t, b.Terms, 3)
	sum := 0.0
	for _, term := range b.Terms {
		sum += term.Value
	}
	assert.Equal(t, sum, b.Total)

	local, ok := b.Term("local_routing")
	require.True(t, ok)
	assert.Equal(t, EdgeLocalRoutingMs, local)
}

func TestCloudBreakdown_WeightsScaleTerms(t *testing.T) {
	weights := domain.LatencyWeights{GPUColdStart: 2}
	b := CloudBreakdown(0, weights, 0)

	coldStart, ok := b.Term("gpu_cold_start")
	require.True(t, ok)
	assert.InDelta(t, 20.0, coldStart, 1e-12)

	// Unweighted fixed hops are unaffected.
	gateway, ok := b.Term("internet_gateway")
	require.True(t, ok)
	assert.Equal(t, InternetGatewayMs, gateway)
}

func TestCloudMatchesBreakdownTotal(t *testing.T) {
	weights := allOnes()
	assert.Equal(t, CloudBreakdown(42, weights, 45).Total, Cloud(42, weights, 45))
	assert.Equal(t, EdgeBreakdown(42, 45).Total, Edge(42, 45))
}
