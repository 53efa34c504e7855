package parser

import "strings"

// Markers are the class names and words worth counting when checking whether
// the profile markup still looks the way the extractors expect.
var Markers = []string{
	"public-profile__badge",
	"public-profile__hero",
	"ql-title-medium",
	"ql-body-medium",
	"ql-display-small",
	"badge-title",
	"profile-badge",
	"badge-card",
	"earned",
	"ql-badge",
}

// MarkerCount is the number of raw occurrences of a marker in a page.
type MarkerCount struct {
	Marker string
	Count  int
}

// CountMarkers counts each of Markers in html, in order.
func CountMarkers(html string) []MarkerCount {
	out := make([]MarkerCount, 0, len(Markers))
	for _, m := range Markers {
		out = append(out, MarkerCount{Marker: m, Count: strings.Count(html, m)})
	}
	return out
}
