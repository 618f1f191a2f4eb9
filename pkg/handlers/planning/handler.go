package planning

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/de-tools/placement-atlas/pkg/adapters"
	"github.com/de-tools/placement-atlas/pkg/models/api"
	"github.com/de-tools/placement-atlas/pkg/models/domain"
	"github.com/de-tools/placement-atlas/pkg/services/catalog"
	"github.com/de-tools/placement-atlas/pkg/services/deployment"
	"github.com/de-tools/placement-atlas/pkg/services/placement"
	"github.com/de-tools/placement-atlas/pkg/services/planner"
	"github.com/de-tools/placement-atlas/pkg/services/rings"
)

// Handler serves placement estimates, coverage rings, and region fill.
type Handler struct {
	catalog       *catalog.Catalog
	deployments   *deployment.Store
	estimator     placement.Service
	maxCandidates int
}

func NewHandler(
	cat *catalog.Catalog,
	deployments *deployment.Store,
	estimator placement.Service,
	maxCandidates int,
) *Handler {
	return &Handler{
		catalog:       cat,
		deployments:   deployments,
		estimator:     estimator,
		maxCandidates: maxCandidates,
	}
}

func (h *Handler) GetEstimates(w http.ResponseWriter, r *http.Request) {
	var req api.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, api.Error{Error: "invalid request body"})
		return
	}

	pointOfUse, err := domain.NewCoordinate(req.Lat, req.Lon)
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	workload, err := h.catalog.Workload(req.WorkloadID)
	if err != nil {
		respondJSON(w, r, http.StatusNotFound, api.Error{Error: err.Error()})
		return
	}

	nodes := h.candidateNodes(req.NodeIDs)
	estimates := h.estimator.Compare(pointOfUse, nodes, workload)

	response := make([]api.PlacementEstimate, 0, len(estimates))
	for _, e := range estimates {
		response = append(response, adapters.MapDomainEstimateToAPI(e))
	}
	respondJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetRings(w http.ResponseWriter, r *http.Request) {
	threshold, err := strconv.Atoi(r.URL.Query().Get("threshold"))
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, api.Error{Error: "threshold must be an integer"})
		return
	}

	multiplier := rings.MultiplierConservative
	if raw := r.URL.Query().Get("multiplier"); raw != "" {
		multiplier, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			respondJSON(w, r, http.StatusBadRequest, api.Error{Error: "multiplier must be a number"})
			return
		}
	}

	nodes := append(h.catalog.Nodes(), h.deployments.List()...)
	result := rings.ForThreshold(nodes, threshold, multiplier)

	response := make([]api.Ring, 0, len(result))
	for _, ring := range result {
		response = append(response, adapters.MapDomainRingToAPI(ring))
	}
	respondJSON(w, r, http.StatusOK, response)
}

func (h *Handler) FillRegion(w http.ResponseWriter, r *http.Request) {
	var req api.RegionFillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, api.Error{Error: "invalid request body"})
		return
	}

	mode := planner.Mode(req.Mode)
	switch mode {
	case planner.ModeCount, planner.ModeMaterialize:
	case "":
		mode = planner.ModeCount
	default:
		respondJSON(w, r, http.StatusBadRequest, api.Error{Error: "mode must be count or materialize"})
		return
	}

	multiplier := req.RadiusMultiplier
	if multiplier == 0 {
		multiplier = rings.MultiplierConservative
	}

	region := adapters.MapAPIRegionToDomain(req)
	if req.Bounds == nil && len(req.Polygon) == 0 {
		region.Bounds = planner.DefaultRegion
	}

	result, err := planner.Fill(planner.Request{
		ThresholdMs:      req.ThresholdMs,
		RadiusMultiplier: multiplier,
		Region:           region,
		Mode:             mode,
		MaxCandidates:    h.maxCandidates,
	})
	if err != nil {
		respondJSON(w, r, http.StatusUnprocessableEntity, api.Error{Error: err.Error()})
		return
	}

	if mode == planner.ModeMaterialize {
		h.deployments.Add(result.Nodes...)
	}

	response := api.RegionFillResponse{
		Count:     result.Count,
		RadiusKm:  result.RadiusKm,
		SpacingKm: result.SpacingKm,
		AreaKm2:   result.AreaKm2,
	}
	for _, n := range result.Nodes {
		response.Nodes = append(response.Nodes, adapters.MapDomainNodeToAPI(n, true))
	}
	respondJSON(w, r, http.StatusOK, response)
}

// candidateNodes resolves the estimate scope: the named ids across both
// collections, or everything when no filter is given.
func (h *Handler) candidateNodes(ids []string) []domain.Node {
	all := append(h.catalog.Nodes(), h.deployments.List()...)
	if len(ids) == 0 {
		return all
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make([]domain.Node, 0, len(ids))
	for _, n := range all {
		if wanted[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
