// Package cost implements the deterministic monthly cost model for the
// two deployment kinds. Rates are static coefficients; per-node pricing
// overrides are resolved in one place, never inline at call sites.
package cost

import "github.com/de-tools/placement-atlas/pkg/models/domain"

// UsageFor derives the monthly usage assumptions from a workload's cost
// flags: always-on hours and rack power are fixed, egress and storage
// come from one of two preset tiers.
func UsageFor(flags domain.CostFlags) domain.Usage {
	u := domain.Usage{
		Hours:     730,
		EgressGB:  1000,
		StorageGB: 1000,
		PowerKW:   10,
	}
	if flags.HighEgress {
		u.EgressGB = 10000
	}
	if flags.NeedsHotStorage {
		u.StorageGB = 5000
	}
	return u
}

// CloudBreakdown decomposes the monthly cost of a cloud placement. The
// compliance uplift is a percentage of the pre-uplift subtotal, applied
// once, and appears as an explicit term (zero when the flag is off).
func CloudBreakdown(node domain.Node, usage domain.Usage, flags domain.CostFlags) domain.Breakdown {
	rates := cloudRatesFor(node)

	terms := []domain.BreakdownTerm{
		{Name: "gpu_compute", Value: rates.GPUHourUSD * usage.Hours, Description: "GPU compute hours"},
		{Name: "egress", Value: rates.EgressPerGBUSD * usage.EgressGB, Description: "data egress"},
		{Name: "storage", Value: rates.StoragePerGBMonthUSD * usage.StorageGB, Description: "object storage"},
		{Name: "network_services", Value: rates.NetworkServicesUSD, Description: "managed network services"},
		{Name: "support_sla", Value: rates.SupportSLAUSD, Description: "support plan / SLA"},
	}

	subtotal := 0.0
	for _, t := range terms {
		subtotal += t.Value
	}

	compliance := 0.0
	if flags.StrongCompliance {
		compliance = CloudComplianceUplift * subtotal
	}
	terms = append(terms, domain.BreakdownTerm{
		Name:        "compliance_uplift",
		Value:       compliance,
		Description: "compliance surcharge",
	})

	return domain.NewBreakdown("USD", terms)
}

// EdgeBreakdown decomposes the monthly cost of an edge or colocation
// placement. Compliance is a flat add (asymmetric with the cloud
// percentage uplift, intentionally), and the redundancy uplift is
// always applied, computed on the subtotal after the compliance add.
func EdgeBreakdown(node domain.Node, usage domain.Usage, flags domain.CostFlags) domain.Breakdown {
	rates := edgeRatesFor(node)

	terms := []domain.BreakdownTerm{
		{Name: "power_lease", Value: rates.PowerLeasePerKWMonthUSD * usage.PowerKW, Description: "power lease"},
		{Name: "local_loop", Value: rates.LocalLoopUSD, Description: "local loop connectivity"},
		{Name: "storage_hardware", Value: rates.StorageHardwareUSD, Description: "on-prem storage hardware"},
		{Name: "ops_support", Value: rates.OpsSupportUSD, Description: "operations support"},
		{Name: "software_stack", Value: rates.SoftwareStackUSD, Description: "software stack licensing"},
	}

	compliance := 0.0
	if flags.StrongCompliance {
		compliance = rates.ComplianceUSD
	}
	terms = append(terms, domain.BreakdownTerm{
		Name:        "compliance",
		Value:       compliance,
		Description: "compliance surcharge",
	})

	subtotal := 0.0
	for _, t := range terms {
		subtotal += t.Value
	}
	terms = append(terms, domain.BreakdownTerm{
		Name:        "redundancy_uplift",
		Value:       EdgeRedundancyUplift * subtotal,
		Description: "redundancy provisioning",
	})

	return domain.NewBreakdown("USD", terms)
}

// Cloud returns the total monthly cost of a cloud placement in USD.
func Cloud(node domain.Node, usage domain.Usage, flags domain.CostFlags) float64 {
	return CloudBreakdown(node, usage, flags).Total
}

// Edge returns the total monthly cost of an edge/colo placement in USD.
func Edge(node domain.Node, usage domain.Usage, flags domain.CostFlags) float64 {
	return EdgeBreakdown(node, usage, flags).Total
}

// ForKind dispatches to the deployment path matching the node kind:
// cloud placements take the centralized model, colocation and edge
// containers take the local one.
func ForKind(node domain.Node, usage domain.Usage, flags domain.CostFlags) domain.Breakdown {
	if node.Kind == domain.NodeKindCloud {
		return CloudBreakdown(node, usage, flags)
	}
	return EdgeBreakdown(node, usage, flags)
}
