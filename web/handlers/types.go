package handlers

import "github.com/campuswatch/bugboard/pkg/types"

// ErrorResponse is the standard error response format for the API.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// FeedItem is a single sighting in the feed, augmented with a relative age
// label rendered server-side ("45m ago", "3h ago", "2d ago").
type FeedItem struct {
	types.Sighting
	Age string `json:"age"`
}

// FeedResponse is the response format for GET /api/sightings.
type FeedResponse struct {
	Items    []FeedItem `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	HasMore  bool       `json:"has_more"`
}

// DistributionResponse is the response format for GET /api/distribution.
type DistributionResponse struct {
	Entries   []types.Entry `json:"entries"`
	Sightings int           `json:"sightings"` // Total sightings across all entries
}

// SightingEvent is broadcast to WebSocket subscribers when a sighting is
// accepted. It carries the new sighting and the recomputed distribution so
// clients never derive counts on their own.
type SightingEvent struct {
	Type         string        `json:"type"` // "sighting.created"
	Sighting     FeedItem      `json:"sighting"`
	Distribution []types.Entry `json:"distribution"`
}
