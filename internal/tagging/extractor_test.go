package tagging

import (
	"testing"

	"github.com/campuswatch/bugboard/pkg/types"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "simple tag",
			text: "saw a huge beetle @<Library>",
			want: "Library",
		},
		{
			name: "tag mid-sentence",
			text: "the @<Dining Hall> has ants again, gross",
			want: "Dining Hall",
		},
		{
			name: "capture is trimmed",
			text: "spider webs everywhere @<  Atrium  >",
			want: "Atrium",
		},
		{
			name: "no tag falls back to sentinel",
			text: "just a regular moth, nothing special",
			want: types.Unspecified,
		},
		{
			name: "empty text",
			text: "",
			want: types.Unspecified,
		},
		{
			name: "empty capture counts as no tag",
			text: "weird bug @<>",
			want: types.Unspecified,
		},
		{
			name: "whitespace-only capture counts as no tag",
			text: "weird bug @<   >",
			want: types.Unspecified,
		},
		{
			name: "only the first tag is honored",
			text: "cockroach @<Patio> then again @<Kitchen>",
			want: "Patio",
		},
		{
			name: "at-sign without angle brackets is not a tag",
			text: "email me @campus.edu about the wasps",
			want: types.Unspecified,
		},
		{
			name: "unclosed tag is not a tag",
			text: "fly near the @<Gym",
			want: types.Unspecified,
		},
		{
			name: "capture may contain symbols and unicode",
			text: "ladybug swarm @<Café #2 (north wing)>",
			want: "Café #2 (north wing)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.text); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
