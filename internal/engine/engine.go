// Package engine implements the sighting submission lifecycle: validation,
// location derivation, photo encoding and insertion into the collection.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuswatch/bugboard/internal/distribution"
	"github.com/campuswatch/bugboard/internal/imaging"
	"github.com/campuswatch/bugboard/internal/storage"
	"github.com/campuswatch/bugboard/internal/tagging"
	"github.com/campuswatch/bugboard/pkg/types"
)

// Submission failure taxonomy. All three are recoverable, user-facing
// validation failures: the caller keeps the submitted input and may retry.
var (
	// ErrMissingDescription indicates the description was empty after trimming.
	ErrMissingDescription = errors.New("description is required")

	// ErrMissingImage indicates no photo was attached to the submission.
	ErrMissingImage = errors.New("a photo is required")

	// ErrImageRead indicates the attached photo could not be read or encoded.
	ErrImageRead = errors.New("could not read photo")
)

// Config holds engine tunables.
type Config struct {
	// MaxImageBytes caps the size of an uploaded photo.
	MaxImageBytes int64
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxImageBytes: 10 << 20, // 10 MiB
	}
}

// Engine owns the submission flow. It validates input, derives the location
// tag, encodes the photo and prepends the finished sighting to the store.
type Engine struct {
	store storage.SightingStore
	cfg   Config

	// mu serializes submissions so a rapid double-submit can never
	// interleave two half-built sightings in the collection.
	mu sync.Mutex

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time
}

// New creates an Engine backed by the given store.
func New(store storage.SightingStore, cfg Config) *Engine {
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = DefaultConfig().MaxImageBytes
	}
	return &Engine{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Submit validates the submission, builds the sighting and inserts it at
// the head of the collection. Validation runs in order: description first
// (ErrMissingDescription), then image presence (ErrMissingImage), then
// image readability (ErrImageRead). On success the returned sighting has a
// fresh unique ID, a non-empty location (falling back to
// types.Unspecified) and an inline-renderable image.
func (e *Engine) Submit(ctx context.Context, description string, image io.Reader) (*types.Sighting, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if strings.TrimSpace(description) == "" {
		return nil, ErrMissingDescription
	}
	if image == nil {
		return nil, ErrMissingImage
	}

	encoded, err := imaging.Encode(image, e.cfg.MaxImageBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageRead, err)
	}

	sighting := &types.Sighting{
		ID:          uuid.New().String(),
		Description: description,
		Location:    tagging.Extract(description),
		Image:       encoded.DataURL,
		ContentType: encoded.ContentType,
		CreatedAt:   e.now(),
	}

	if err := e.store.Prepend(ctx, sighting); err != nil {
		return nil, fmt.Errorf("storing sighting: %w", err)
	}

	return sighting, nil
}

// Distribution recomputes the ranked location counts from the current
// collection. The result is a projection of the collection and never
// drifts from it.
func (e *Engine) Distribution(ctx context.Context) ([]types.Entry, error) {
	snapshot, err := e.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}
	return distribution.Aggregate(snapshot), nil
}
