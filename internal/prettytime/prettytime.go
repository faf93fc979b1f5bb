// Package prettytime renders coarse relative-age labels for the sighting
// feed ("45m ago", "3h ago", "2d ago").
package prettytime

import (
	"fmt"
	"time"
)

// Format renders the elapsed time between instant and now as a relative
// label: "Nm ago" under an hour, "Nh ago" under a day, "Nd ago" beyond.
// Every bucket rounds half up, and the label is never zero or negative;
// instants in the future (clock skew) clamp to "1m ago".
func Format(now, instant time.Time) string {
	ms := now.Sub(instant).Milliseconds()

	minutes := roundDiv(ms, 60_000)
	if minutes < 1 {
		minutes = 1
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := roundDiv(minutes, 60)
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	return fmt.Sprintf("%dd ago", roundDiv(hours, 24))
}

// roundDiv divides a by b rounding half up. A negative a (future instant)
// yields a value the minutes clamp in Format absorbs.
func roundDiv(a, b int64) int64 {
	return (a + b/2) / b
}
