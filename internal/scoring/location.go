package scoring

import (
	"fmt"
	"strings"

	"github.com/rhtools/cv-screener/internal/lexicon"
)

// ExtractLocations scans lowercased lines for known city names and returns
// the cities in first-appearance order, each at most once, together with the
// trimmed line that first mentioned each city.
func ExtractLocations(text string) (cities, matches []string) {
	lines := strings.Split(strings.ToLower(text), "\n")

	seen := make(map[string]bool)
	for _, line := range lines {
		for _, entry := range lexicon.CityCommuteTable {
			if seen[entry.City] || !strings.Contains(line, entry.City) {
				continue
			}
			seen[entry.City] = true
			cities = append(cities, entry.City)
			matches = append(matches, strings.TrimSpace(line))
		}
	}

	return cities, matches
}

// ResolveLocation picks the candidate's location from the detected cities:
// the first one found, or the "non renseignée" sentinel.
func ResolveLocation(cities []string) string {
	if len(cities) > 0 {
		return cities[0]
	}
	return lexicon.UnknownLocation
}

// CommuteDisplay formats the two commute estimates the way the review table
// shows them: "15min (T) / 20min (V)".
func CommuteDisplay(transport, car int) string {
	return fmt.Sprintf("%dmin (T) / %dmin (V)", transport, car)
}
