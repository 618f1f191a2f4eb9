package domain

type NodeKind string

const (
	NodeKindColocation    NodeKind = "colocation"
	NodeKindCloud         NodeKind = "cloud"
	NodeKindEdgeContainer NodeKind = "edge-container"
)

type Vacancy string

const (
	VacancyUnknown Vacancy = "unknown"
	VacancyLow     Vacancy = "low"
	VacancyMedium  Vacancy = "medium"
	VacancyHigh    Vacancy = "high"
)

// Pricing holds per-node rate overrides. Nil fields fall back to the
// global default rate tables in a single resolution step; call sites
// never default inline.
type Pricing struct {
	PowerLeasePerKWMonthUSD *float64
	RackMonthlyUSD          *float64
	GPUHourUSD              *float64
	EgressPerGBUSD          *float64
}

// Node is a candidate compute location. Catalog nodes are immutable
// after load; user-placed edge containers live in the deployment store.
type Node struct {
	ID       string
	Name     string
	Operator string
	Kind     NodeKind

	// Coordinate is nil for off-map nodes (distant regions shown only
	// in list form). ApproxCoordinate, resolved once at catalog load,
	// gives such nodes a plottable position for distance estimates.
	Coordinate       *Coordinate
	ApproxCoordinate *Coordinate

	Vacancy Vacancy
	Pricing Pricing
	Note    string
}

// Location returns the node's best-known position: the exact coordinate
// when present, otherwise the load-time approximation for off-map nodes.
func (n Node) Location() (Coordinate, bool) {
	if n.Coordinate != nil {
		return *n.Coordinate, true
	}
	if n.ApproxCoordinate != nil {
		return *n.ApproxCoordinate, true
	}
	return Coordinate{}, false
}

// OnMap reports whether the node has an exact map position.
func (n Node) OnMap() bool {
	return n.Coordinate != nil
}
