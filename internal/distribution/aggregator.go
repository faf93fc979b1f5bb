// Package distribution derives the ranked per-location sighting counts
// shown on the board.
package distribution

import (
	"sort"

	"github.com/campuswatch/bugboard/pkg/types"
)

// Aggregate groups sightings by location and returns one entry per distinct
// location, sorted by count descending with ties broken by location
// ascending. The ordering is deterministic for equal inputs and the counts
// always sum to len(sightings).
func Aggregate(sightings []types.Sighting) []types.Entry {
	counts := make(map[string]int, len(sightings))
	for _, s := range sightings {
		counts[s.Location]++
	}

	entries := make([]types.Entry, 0, len(counts))
	for location, count := range counts {
		entries = append(entries, types.Entry{Location: location, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Location < entries[j].Location
	})

	return entries
}
