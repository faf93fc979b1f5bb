// Package memory provides the in-process SightingStore used for a single
// board session. Nothing is persisted: restarting the server starts an
// empty board.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/campuswatch/bugboard/internal/storage"
	"github.com/campuswatch/bugboard/pkg/types"
)

// Store is an append-only, newest-first in-memory sighting collection.
// It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	sightings []types.Sighting // newest first
	byID      map[string]types.Sighting
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]types.Sighting),
	}
}

// Prepend inserts a new sighting at the head of the collection.
// The sighting is copied in, so later caller mutations don't leak into the
// collection.
func (s *Store) Prepend(ctx context.Context, sighting *types.Sighting) error {
	if sighting == nil {
		return fmt.Errorf("%w: sighting is nil", storage.ErrInvalidInput)
	}
	if sighting.ID == "" {
		return fmt.Errorf("%w: sighting ID is required", storage.ErrInvalidInput)
	}
	// Collection invariant: every sighting carries a location and an image.
	if sighting.Location == "" {
		return fmt.Errorf("%w: sighting location is required", storage.ErrInvalidInput)
	}
	if sighting.Image == "" {
		return fmt.Errorf("%w: sighting image is required", storage.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[sighting.ID]; exists {
		return fmt.Errorf("%w: duplicate sighting ID %q", storage.ErrInvalidInput, sighting.ID)
	}

	s.sightings = append([]types.Sighting{*sighting}, s.sightings...)
	s.byID[sighting.ID] = *sighting
	return nil
}

// Get retrieves a sighting by ID. Returns a copy so callers cannot mutate
// the stored entry.
func (s *Store) Get(ctx context.Context, id string) (*types.Sighting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sighting, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &sighting, nil
}

// List retrieves a page of sightings, newest first.
func (s *Store) List(ctx context.Context, opts storage.ListOptions) (*storage.PaginatedResult[types.Sighting], error) {
	opts.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.sightings)
	start := opts.Offset()
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	items := make([]types.Sighting, end-start)
	copy(items, s.sightings[start:end])

	return &storage.PaginatedResult[types.Sighting]{
		Items:    items,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.Limit,
		HasMore:  end < total,
	}, nil
}

// Snapshot returns a copy of the full collection, newest first.
func (s *Store) Snapshot(ctx context.Context) ([]types.Sighting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]types.Sighting, len(s.sightings))
	copy(snapshot, s.sightings)
	return snapshot, nil
}

// Count returns the number of sightings in the collection.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sightings), nil
}

// Close releases resources held by the store. The in-memory store holds
// none, so Close only exists to satisfy storage.SightingStore.
func (s *Store) Close() error {
	return nil
}
