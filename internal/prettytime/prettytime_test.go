package prettytime

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"just now clamps to one minute", 5 * time.Second, "1m ago"},
		{"zero elapsed clamps to one minute", 0, "1m ago"},
		{"future instant clamps to one minute", -3 * time.Minute, "1m ago"},
		{"forty-five minutes", 45 * time.Minute, "45m ago"},
		{"fifty-nine minutes", 59 * time.Minute, "59m ago"},
		{"sub-minute rounding half up", 90 * time.Second, "2m ago"},
		{"sixty minutes becomes an hour", 60 * time.Minute, "1h ago"},
		{"ninety minutes rounds to two hours", 90 * time.Minute, "2h ago"},
		// 150 minutes is exactly 2.5h; the convention is round half up.
		{"exact half hour rounds up", 150 * time.Minute, "3h ago"},
		{"twenty-three hours", 23 * time.Hour, "23h ago"},
		{"twenty-three and a half hours rounds to a day", 23*time.Hour + 30*time.Minute, "1d ago"},
		{"twenty-four hours", 24 * time.Hour, "1d ago"},
		{"thirty-six hours is exactly 1.5 days rounds up", 36 * time.Hour, "2d ago"},
		{"one week", 7 * 24 * time.Hour, "7d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(now, now.Add(-tt.elapsed))
			if got != tt.want {
				t.Errorf("Format(now, now-%v) = %q, want %q", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestFormat_MinuteBoundaryRoundsIntoHours(t *testing.T) {
	now := time.Now()

	// 59m30s rounds to 60 minutes, which must render as hours, never "60m ago".
	got := Format(now, now.Add(-(59*time.Minute + 30*time.Second)))
	if got != "1h ago" {
		t.Errorf("Format at 59m30s = %q, want %q", got, "1h ago")
	}
}
