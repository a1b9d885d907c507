package scoring

import (
	"reflect"
	"testing"

	"github.com/rhtools/cv-screener/internal/lexicon"
)

func TestExtractLocations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		text         string
		expectCities []string
	}{
		{
			name:         "repeated city is kept once at first occurrence",
			text:         "basé à Torcy\nexpérience à paris\ndisponible sur torcy",
			expectCities: []string{"torcy", "paris"},
		},
		{
			name:         "no known city",
			text:         "télétravail uniquement",
			expectCities: nil,
		},
		{
			name:         "city inside a longer line",
			text:         "Adresse : 12 rue des Lilas, 77200 Torcy",
			expectCities: []string{"torcy"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cities, matches := ExtractLocations(tt.text)
			if !reflect.DeepEqual(cities, tt.expectCities) {
				t.Fatalf("expected cities %v, got %v", tt.expectCities, cities)
			}
			if len(matches) != len(cities) {
				t.Fatalf("expected one matched line per city, got %d lines for %d cities", len(matches), len(cities))
			}
		})
	}
}

func TestResolveLocation(t *testing.T) {
	t.Parallel()

	if got := ResolveLocation([]string{"lognes", "paris"}); got != "lognes" {
		t.Fatalf("expected first city, got %q", got)
	}
	if got := ResolveLocation(nil); got != lexicon.UnknownLocation {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestCommuteDisplay(t *testing.T) {
	t.Parallel()

	if got := CommuteDisplay(15, 20); got != "15min (T) / 20min (V)" {
		t.Fatalf("unexpected display: %q", got)
	}
	if got := CommuteDisplay(999, 999); got != "999min (T) / 999min (V)" {
		t.Fatalf("unexpected sentinel display: %q", got)
	}
}
