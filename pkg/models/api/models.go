package api

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

type Node struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Operator         string      `json:"operator,omitempty"`
	Kind             string      `json:"kind"`
	Coordinate       *Coordinate `json:"coordinate,omitempty"`
	ApproxCoordinate *Coordinate `json:"approx_coordinate,omitempty"`
	Vacancy          string      `json:"vacancy"`
	Note             string      `json:"note,omitempty"`
	Placed           bool        `json:"placed"`
}

type Workload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	TypicalMs   float64 `json:"typical_inference_ms"`
}

type BreakdownTerm struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Description string  `json:"description,omitempty"`
}

type Breakdown struct {
	Unit  string          `json:"unit"`
	Terms []BreakdownTerm `json:"terms"`
	Total float64         `json:"total"`
}

type PlacementEstimate struct {
	NodeID         string    `json:"node_id"`
	NodeName       string    `json:"node_name"`
	Kind           string    `json:"kind"`
	DistanceKm     float64   `json:"distance_km"`
	LatencyMs      float64   `json:"latency_ms"`
	Latency        Breakdown `json:"latency_breakdown"`
	MonthlyCostUSD float64   `json:"monthly_cost_usd"`
	Cost           Breakdown `json:"cost_breakdown"`
}

type Ring struct {
	NodeID      string       `json:"node_id"`
	Center      Coordinate   `json:"center"`
	RadiusKm    float64      `json:"radius_km"`
	ThresholdMs int          `json:"threshold_ms"`
	Color       string       `json:"color"`
	Polygon     []Coordinate `json:"polygon"`
}

type EstimateRequest struct {
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	WorkloadID string   `json:"workload_id"`
	NodeIDs    []string `json:"node_ids,omitempty"`
}

type PlaceNodeRequest struct {
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type RegionFillRequest struct {
	ThresholdMs      int          `json:"threshold_ms"`
	RadiusMultiplier float64      `json:"radius_multiplier"`
	Mode             string       `json:"mode"`
	Bounds           *Bounds      `json:"bounds,omitempty"`
	Polygon          []Coordinate `json:"polygon,omitempty"`
}

type RegionFillResponse struct {
	Count     int     `json:"count"`
	RadiusKm  float64 `json:"radius_km"`
	SpacingKm float64 `json:"spacing_km"`
	AreaKm2   float64 `json:"area_km2"`
	Nodes     []Node  `json:"nodes,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
