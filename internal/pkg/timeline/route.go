package timeline

import (
	"regexp"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
)

// matches "CMB→DXB", "CMB -> DXB", "CMB ➔ DXB" and similar arrow glyphs
var routeRegex = regexp.MustCompile(`\b([A-Z]{3})\s*(?:→|➔|➝|⟶|⇒|->)\s*([A-Z]{3})\b`)

// ParseRoute extracts the first origin/destination pair from a flight label.
// A label without a route token, e.g. "8D821", reports false.
func ParseRoute(label string) (dto.Route, bool) {
	m := routeRegex.FindStringSubmatch(label)
	if m == nil {
		return dto.Route{}, false
	}

	return dto.Route{
		Origin:      m[1],
		Destination: m[2],
	}, true
}
