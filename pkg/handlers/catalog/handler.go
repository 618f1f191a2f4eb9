package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/placement-atlas/pkg/adapters"
	"github.com/de-tools/placement-atlas/pkg/models/api"
	"github.com/de-tools/placement-atlas/pkg/models/domain"
	"github.com/de-tools/placement-atlas/pkg/services/catalog"
	"github.com/de-tools/placement-atlas/pkg/services/deployment"
	"github.com/de-tools/placement-atlas/pkg/services/planner"
)

// Handler serves the node and workload catalogs plus the mutable
// placed-node collection.
type Handler struct {
	catalog     *catalog.Catalog
	deployments *deployment.Store
}

func NewHandler(cat *catalog.Catalog, deployments *deployment.Store) *Handler {
	return &Handler{catalog: cat, deployments: deployments}
}

func (h *Handler) ListNodes(w http.ResponseWriter, r *http.Request) {
	var response []api.Node
	for _, n := range h.catalog.Nodes() {
		response = append(response, adapters.MapDomainNodeToAPI(n, false))
	}
	for _, n := range h.deployments.List() {
		response = append(response, adapters.MapDomainNodeToAPI(n, true))
	}
	respondJSON(w, r, http.StatusOK, response)
}

func (h *Handler) ListWorkloads(w http.ResponseWriter, r *http.Request) {
	var response []api.Workload
	for _, wl := range h.catalog.Workloads() {
		response = append(response, adapters.MapDomainWorkloadToAPI(wl))
	}
	respondJSON(w, r, http.StatusOK, response)
}

func (h *Handler) PlaceNode(w http.ResponseWriter, r *http.Request) {
	var req api.PlaceNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, api.Error{Error: "invalid request body"})
		return
	}

	coord, err := domain.NewCoordinate(req.Lat, req.Lon)
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	node := planner.NewGridSiteNode(coord, "manually placed")
	if req.Name != "" {
		node.Name = req.Name
	}
	h.deployments.Add(node)

	respondJSON(w, r, http.StatusCreated, adapters.MapDomainNodeToAPI(node, true))
}

func (h *Handler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.deployments.Remove(id); err != nil {
		respondJSON(w, r, http.StatusNotFound, api.Error{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearNodes(w http.ResponseWriter, r *http.Request) {
	removed := h.deployments.Clear()
	respondJSON(w, r, http.StatusOK, map[string]int{"removed": removed})
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
