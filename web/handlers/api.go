package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/campuswatch/bugboard/internal/engine"
	"github.com/campuswatch/bugboard/internal/prettytime"
	"github.com/campuswatch/bugboard/internal/storage"
)

// maxUploadMemory is the in-memory buffer for multipart parsing; larger
// uploads spill to temp files. The actual photo size cap is enforced by the
// engine.
const maxUploadMemory = 4 << 20

// SightingHandlers contains HTTP handlers for the sightings REST API.
type SightingHandlers struct {
	engine      *engine.Engine
	store       storage.SightingStore
	hub         *WebSocketHub
	maxPageSize int

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time
}

// NewSightingHandlers creates a new SightingHandlers instance. The hub may
// be nil, in which case accepted sightings are not broadcast.
func NewSightingHandlers(eng *engine.Engine, store storage.SightingStore, hub *WebSocketHub, maxPageSize int) *SightingHandlers {
	if maxPageSize < 1 {
		maxPageSize = 100
	}
	return &SightingHandlers{
		engine:      eng,
		store:       store,
		hub:         hub,
		maxPageSize: maxPageSize,
		now:         time.Now,
	}
}

// CreateSighting handles POST /api/sightings - submit a new sighting.
// Expects a multipart form with a "description" text field and a "photo"
// file field. Validation failures are user-facing and recoverable: the
// client keeps the entered input and may resubmit.
func (h *SightingHandlers) CreateSighting(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "expected multipart form data", err)
		return
	}

	description := r.FormValue("description")

	// A missing photo field is not an error here: the engine reports it as
	// ErrMissingImage after the description check, preserving the
	// validation order.
	var image io.Reader
	file, _, err := r.FormFile("photo")
	switch {
	case err == nil:
		defer file.Close()
		image = file
	case errors.Is(err, http.ErrMissingFile):
		// leave image nil
	default:
		respondError(w, http.StatusBadRequest, "failed to read photo field", err)
		return
	}

	sighting, err := h.engine.Submit(r.Context(), description, image)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrMissingDescription):
			respondError(w, http.StatusBadRequest, "description is required", err)
		case errors.Is(err, engine.ErrMissingImage):
			respondError(w, http.StatusBadRequest, "a photo is required", err)
		case errors.Is(err, engine.ErrImageRead):
			respondError(w, http.StatusUnprocessableEntity, "could not read photo", err)
		default:
			respondError(w, http.StatusInternalServerError, "failed to create sighting", err)
		}
		return
	}

	item := FeedItem{
		Sighting: *sighting,
		Age:      prettytime.Format(h.now(), sighting.CreatedAt),
	}

	// Broadcast the new sighting with the recomputed distribution so feed
	// and ranking views update together.
	if h.hub != nil {
		entries, err := h.engine.Distribution(r.Context())
		if err != nil {
			log.Printf("WARNING: failed to recompute distribution for broadcast: %v", err)
		} else {
			h.hub.Broadcast(SightingEvent{
				Type:         "sighting.created",
				Sighting:     item,
				Distribution: entries,
			})
		}
	}

	respondJSON(w, http.StatusCreated, item)
}

// ListSightings handles GET /api/sightings - the newest-first feed with
// pagination and server-rendered relative ages.
func (h *SightingHandlers) ListSightings(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)

	// Enforce maximum pagination limit to prevent resource exhaustion
	if limit > h.maxPageSize {
		limit = h.maxPageSize
	}

	opts := storage.ListOptions{
		Page:  page,
		Limit: limit,
	}
	opts.Normalize()

	result, err := h.store.List(r.Context(), opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list sightings", err)
		return
	}

	now := h.now()
	items := make([]FeedItem, len(result.Items))
	for i, s := range result.Items {
		items[i] = FeedItem{
			Sighting: s,
			Age:      prettytime.Format(now, s.CreatedAt),
		}
	}

	respondJSON(w, http.StatusOK, FeedResponse{
		Items:    items,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
		HasMore:  result.HasMore,
	})
}

// GetSighting handles GET /api/sightings/{id} - get a single sighting by ID.
func (h *SightingHandlers) GetSighting(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "sighting ID is required", nil)
		return
	}

	sighting, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "sighting not found", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get sighting", err)
		return
	}

	respondJSON(w, http.StatusOK, FeedItem{
		Sighting: *sighting,
		Age:      prettytime.Format(h.now(), sighting.CreatedAt),
	})
}

// Helper functions

// parseInt parses an integer from a string, returning defaultValue if parsing fails.
func parseInt(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return val
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent, so just log the failure.
		fmt.Printf("failed to encode JSON response: %v\n", err)
	}
}

// respondError writes an error response with the given status code.
func respondError(w http.ResponseWriter, statusCode int, message string, err error) {
	errResp := ErrorResponse{
		Error: message,
		Code:  http.StatusText(statusCode),
	}

	if err != nil {
		errResp.Details = map[string]interface{}{
			"error": err.Error(),
		}
	}

	respondJSON(w, statusCode, errResp)
}
