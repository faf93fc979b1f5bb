// Package tagging extracts the @<Location> marker from free-text sighting
// descriptions.
package tagging

import (
	"regexp"
	"strings"

	"github.com/campuswatch/bugboard/pkg/types"
)

// tagPattern matches the first @<...> marker in a description. The capture
// stops at the first '>', so later markers in the same text are ignored.
var tagPattern = regexp.MustCompile(`@<([^>]*)>`)

// Extract returns the location label embedded in text, or types.Unspecified
// when no tag is present. The captured label is trimmed of surrounding
// whitespace; an empty or whitespace-only capture (e.g. "@<>") counts as no
// tag. Extract is total: it never fails, whatever the input.
func Extract(text string) string {
	m := tagPattern.FindStringSubmatch(text)
	if m == nil {
		return types.Unspecified
	}

	label := strings.TrimSpace(m[1])
	if label == "" {
		return types.Unspecified
	}
	return label
}
