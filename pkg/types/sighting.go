package types

import "time"

// Unspecified is the fallback location label used when a description
// carries no @<...> tag.
const Unspecified = "Unspecified"

// Sighting represents a single user-submitted bug report with photo
// evidence. Sightings are immutable once created: the collection only ever
// grows at the head, and existing entries are never edited or removed.
type Sighting struct {
	ID          string    `json:"id"`           // Unique identifier (UUID)
	Description string    `json:"description"`  // Raw text supplied by the user
	Location    string    `json:"location"`     // Extracted @<...> tag, or Unspecified
	Image       string    `json:"image"`        // Inline-renderable data-URL, owned solely by this sighting
	ContentType string    `json:"content_type"` // Sniffed MIME type of the uploaded photo
	CreatedAt   time.Time `json:"created_at"`   // When the sighting was submitted
}

// Entry is one row of the location distribution: how many sightings have
// been reported at a location. Entries are a pure projection of the
// sighting collection and are recomputed on every change, never stored.
type Entry struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}
