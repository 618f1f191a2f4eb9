package domain

// BreakdownTerm is one named additive component of an estimate.
type BreakdownTerm struct {
	Name        string
	Value       float64
	Description string
}

// Breakdown decomposes an estimate into named terms. Total is always
// the exact sum of the terms; there are no hidden components.
type Breakdown struct {
	Unit  string
	Terms []BreakdownTerm
	Total float64
}

// NewBreakdown sums the terms so the total/terms invariant holds by
// construction.
func NewBreakdown(unit string, terms []BreakdownTerm) Breakdown {
	total := 0.0
	for _, t := range terms {
		total += t.Value
	}
	return Breakdown{Unit: unit, Terms: terms, Total: total}
}

// Term returns the value of the named term and whether it is present.
func (b Breakdown) Term(name string) (float64, bool) {
	for _, t := range b.Terms {
		if t.Name == name {
			return t.Value, true
		}
	}
	return 0, false
}

// PlacementEstimate scores one candidate node against a point of use
// for a workload profile. Recomputed on demand, never cached.
type PlacementEstimate struct {
	Node           Node
	DistanceKm     float64
	LatencyMs      float64
	Latency        Breakdown
	MonthlyCostUSD float64
	Cost           Breakdown
}
