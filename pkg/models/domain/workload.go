package domain

// LatencyWeights are the ten dimensionless multipliers a workload
// profile applies to the fixed per-hop latency constants. A profile
// missing any component is rejected at catalog load; there are no
// runtime defaults.
type LatencyWeights struct {
	LoadBalancer        float64
	TLSHandshake        float64
	Orchestration       float64
	GPUColdStart        float64
	ModelLoad           float64
	QueueingMultitenant float64
	NoisyNeighbor       float64
	DataRetrieval       float64
	LongHaul            float64
	ServerlessOverhead  float64
}

// InferenceTime is the workload's compute time envelope in milliseconds.
// Typical is the value used in comparisons.
type InferenceTime struct {
	MinMs     float64
	TypicalMs float64
	MaxMs     float64
}

// CostFlags select between the two preset usage tiers and the
// compliance surcharges.
type CostFlags struct {
	NeedsHotStorage  bool
	StrongCompliance bool
	HighEgress       bool
}

// WorkloadProfile is a named latency/cost scenario.
type WorkloadProfile struct {
	ID          string
	Name        string
	Description string
	Weights     LatencyWeights
	Inference   InferenceTime
	Flags       CostFlags
}

// Usage holds the derived monthly usage assumptions. Hours and PowerKW
// are fixed; egress and storage come from the cost-flag tiers.
type Usage struct {
	Hours     float64
	EgressGB  float64
	StorageGB float64
	PowerKW   float64
}
