package handlers

import (
	"net/http"

	"github.com/campuswatch/bugboard/internal/engine"
	"github.com/campuswatch/bugboard/internal/storage"
)

// DistributionHandler handles the ranked location distribution endpoint.
type DistributionHandler struct {
	engine *engine.Engine
	store  storage.SightingStore
}

// NewDistributionHandler creates a new DistributionHandler instance.
func NewDistributionHandler(eng *engine.Engine, store storage.SightingStore) *DistributionHandler {
	return &DistributionHandler{
		engine: eng,
		store:  store,
	}
}

// GetDistribution handles GET /api/distribution - returns one entry per
// distinct location, ranked by sighting count descending with ties broken
// alphabetically. An empty board yields an empty entries list.
func (h *DistributionHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.engine.Distribution(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute distribution", err)
		return
	}

	total, err := h.store.Count(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to count sightings", err)
		return
	}

	respondJSON(w, http.StatusOK, DistributionResponse{
		Entries:   entries,
		Sightings: total,
	})
}
