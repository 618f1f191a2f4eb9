package cost

import "github.com/de-tools/placement-atlas/pkg/models/domain"

// CloudRates are the monthly rate coefficients for centralized
// placements.
type CloudRates struct {
	GPUHourUSD           float64
	EgressPerGBUSD       float64
	StoragePerGBMonthUSD float64
	NetworkServicesUSD   float64
	SupportSLAUSD        float64
}

// EdgeRates are the monthly rate coefficients for edge and colocation
// placements.
type EdgeRates struct {
	PowerLeasePerKWMonthUSD float64
	LocalLoopUSD            float64
	StorageHardwareUSD      float64
	OpsSupportUSD           float64
	SoftwareStackUSD        float64
	ComplianceUSD           float64
}

// DefaultCloudRates is the global default rate table for cloud nodes.
var DefaultCloudRates = CloudRates{
	GPUHourUSD:           4.00,
	EgressPerGBUSD:       0.09,
	StoragePerGBMonthUSD: 0.021,
	NetworkServicesUSD:   150,
	SupportSLAUSD:        300,
}

// DefaultEdgeRates is the global default rate table for edge/colo nodes.
var DefaultEdgeRates = EdgeRates{
	PowerLeasePerKWMonthUSD: 160,
	LocalLoopUSD:            800,
	StorageHardwareUSD:      300,
	OpsSupportUSD:           500,
	SoftwareStackUSD:        400,
	ComplianceUSD:           200,
}

const (
	// CloudComplianceUplift is the fraction of the pre-uplift subtotal
	// added when the workload requires strong compliance.
	CloudComplianceUplift = 0.05

	// EdgeRedundancyUplift is applied unconditionally to every
	// edge/colo subtotal, after any compliance add.
	EdgeRedundancyUplift = 0.15
)

// cloudRatesFor resolves a node's effective cloud rates: defaults with
// any per-node pricing overrides applied.
func cloudRatesFor(node domain.Node) CloudRates {
	rates := DefaultCloudRates
	if node.Pricing.GPUHourUSD != nil {
		rates.GPUHourUSD = *node.Pricing.GPUHourUSD
	}
	if node.Pricing.EgressPerGBUSD != nil {
		rates.EgressPerGBUSD = *node.Pricing.EgressPerGBUSD
	}
	return rates
}

// edgeRatesFor resolves a node's effective edge rates.
func edgeRatesFor(node domain.Node) EdgeRates {
	rates := DefaultEdgeRates
	if node.Pricing.PowerLeasePerKWMonthUSD != nil {
		rates.PowerLeasePerKWMonthUSD = *node.Pricing.PowerLeasePerKWMonthUSD
	}
	return rates
}
