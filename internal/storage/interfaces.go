// Package storage defines the interface for the sighting collection.
//
// The collection is an ordered sequence of sightings, newest first. It is
// append-only: new sightings are inserted at the head, and existing entries
// are never mutated or removed.
package storage

import (
	"context"

	"github.com/campuswatch/bugboard/pkg/types"
)

// SightingStore is the collection of submitted sightings.
type SightingStore interface {
	// Prepend inserts a new sighting at the head of the collection,
	// preserving newest-first ordering. Returns ErrInvalidInput when the
	// sighting violates the collection invariants (missing ID, location,
	// or image).
	Prepend(ctx context.Context, sighting *types.Sighting) error

	// Get retrieves a sighting by ID.
	// Returns ErrNotFound if the sighting doesn't exist.
	Get(ctx context.Context, id string) (*types.Sighting, error)

	// List retrieves a page of sightings, newest first.
	List(ctx context.Context, opts ListOptions) (*PaginatedResult[types.Sighting], error)

	// Snapshot returns a copy of the full collection, newest first.
	// The returned slice is owned by the caller; mutating it does not
	// affect the collection.
	Snapshot(ctx context.Context) ([]types.Sighting, error)

	// Count returns the number of sightings in the collection.
	Count(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
