// Package latency implements the deterministic round-trip latency
// model. Figures are heuristic estimates from static coefficients, not
// measurements.
package latency

import "github.com/de-tools/placement-atlas/pkg/models/domain"

const (
	// SignalSpeedKmPerSec is the effective propagation speed in fiber,
	// not vacuum light speed; routing inefficiency is partially folded
	// in here and partially in PathInefficiency.
	SignalSpeedKmPerSec = 200000.0

	// PathInefficiency scales great-circle distance to account for
	// non-straight-line routing.
	PathInefficiency = 1.2
)

// Fixed per-hop costs in milliseconds. The weighted ones are multiplied
// by the workload's latency weights; the rest apply as-is.
const (
	InternetGatewayMs   = 1.0
	LoadBalancerBaseMs  = 1.2
	TLSHandshakeBaseMs  = 0.8
	VPCRoutingMs        = 0.6
	OrchestrationBaseMs = 1.0
	GPUColdStartBaseMs  = 10.0
	ModelLoadBaseMs     = 4.0
	QueueingBaseMs      = 1.5
	NoisyNeighborBaseMs = 0.8
	DataRetrievalBaseMs = 2.0
	LongHaulBaseMs      = 2.5
	ServerlessBaseMs    = 1.3

	// EdgeLocalRoutingMs is the only fixed hop on the edge/colo path.
	EdgeLocalRoutingMs = 0.5
)

// PropagationRTT converts a one-way great-circle distance into a
// round-trip propagation delay in milliseconds.
func PropagationRTT(distanceKm float64) float64 {
	return 2 * (distanceKm * PathInefficiency / SignalSpeedKmPerSec) * 1000
}

// CloudBreakdown decomposes the centralized deployment path: propagation
// plus every orchestration overhead hop plus inference time. The
// breakdown total is the sum of the returned terms by construction.
func CloudBreakdown(distanceKm float64, w domain.LatencyWeights, inferenceMs float64) domain.Breakdown {
	terms := []domain.BreakdownTerm{
		{Name: "propagation", Value: PropagationRTT(distanceKm), Description: "round-trip fiber propagation"},
		{Name: "internet_gateway", Value: InternetGatewayMs, Description: "internet gateway traversal"},
		{Name: "load_balancer", Value: LoadBalancerBaseMs * w.LoadBalancer, Description: "load balancer hop"},
		{Name: "tls_handshake", Value: TLSHandshakeBaseMs * w.TLSHandshake, Description: "TLS handshake amortized"},
		{Name: "vpc_routing", Value: VPCRoutingMs, Description: "VPC internal routing"},
		{Name: "orchestration", Value: OrchestrationBaseMs * w.Orchestration, Description: "container orchestration overhead"},
		{Name: "gpu_cold_start", Value: GPUColdStartBaseMs * w.GPUColdStart, Description: "GPU cold start amortized"},
		{Name: "model_load", Value: ModelLoadBaseMs * w.ModelLoad, Description: "model load to GPU amortized"},
		{Name: "queueing", Value: QueueingBaseMs * w.QueueingMultitenant, Description: "multitenant queueing"},
		{Name: "noisy_neighbor", Value: NoisyNeighborBaseMs * w.NoisyNeighbor, Description: "noisy neighbor contention"},
		{Name: "data_retrieval", Value: DataRetrievalBaseMs * w.DataRetrieval, Description: "data retrieval"},
		{Name: "long_haul", Value: LongHaulBaseMs * w.LongHaul, Description: "long-haul POP or cross-AZ hop"},
		{Name: "serverless", Value: ServerlessBaseMs * w.ServerlessOverhead, Description: "serverless invocation overhead"},
		{Name: "inference", Value: inferenceMs, Description: "inference compute time"},
	}
	return domain.NewBreakdown("ms", terms)
}

// EdgeBreakdown decomposes the local deployment path. Edge and colo
// placements skip every cloud-only orchestration hop; local routing,
// propagation, and inference are the whole story.
func EdgeBreakdown(distanceKm float64, inferenceMs float64) domain.Breakdown {
	terms := []domain.BreakdownTerm{
		{Name: "local_routing", Value: EdgeLocalRoutingMs, Description: "local network routing"},
		{Name: "propagation", Value: PropagationRTT(distanceKm), Description: "round-trip fiber propagation"},
		{Name: "inference", Value: inferenceMs, Description: "inference compute time"},
	}
	return domain.NewBreakdown("ms", terms)
}

// Cloud returns the total round-trip latency of the centralized path in
// milliseconds.
func Cloud(distanceKm float64, w domain.LatencyWeights, inferenceMs float64) float64 {
	return CloudBreakdown(distanceKm, w, inferenceMs).Total
}

// Edge returns the total round-trip latency of the local path in
// milliseconds.
func Edge(distanceKm float64, inferenceMs float64) float64 {
	return EdgeBreakdown(distanceKm, inferenceMs).Total
}
