package lexicon

import "testing"

func TestLevelIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   string
		expect int
	}{
		{code: "A1", expect: 0},
		{code: "B1", expect: 2},
		{code: "C2", expect: 5},
		{code: "Z9", expect: 0},
		{code: "", expect: 0},
		{code: "b2", expect: 0},
	}

	for _, tt := range tests {
		if got := LevelIndex(tt.code); got != tt.expect {
			t.Fatalf("LevelIndex(%q): expected %d, got %d", tt.code, tt.expect, got)
		}
	}
}

func TestCommuteFallsBackToSentinel(t *testing.T) {
	t.Parallel()

	if transport, car := Commute("torcy"); transport != 15 || car != 20 {
		t.Fatalf("unexpected commute for torcy: %d/%d", transport, car)
	}

	for _, loc := range []string{UnknownLocation, "atlantis", ""} {
		transport, car := Commute(loc)
		if transport != SentinelCommute || car != SentinelCommute {
			t.Fatalf("expected sentinel commute for %q, got %d/%d", loc, transport, car)
		}
	}
}

func TestCityTableIsLowercaseAndUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, entry := range CityCommuteTable {
		if seen[entry.City] {
			t.Fatalf("duplicate city %q in commute table", entry.City)
		}
		seen[entry.City] = true

		for _, r := range entry.City {
			if r >= 'A' && r <= 'Z' {
				t.Fatalf("city key %q is not lowercase", entry.City)
			}
		}

		if !KnownCity(entry.City) {
			t.Fatalf("city %q missing from lookup map", entry.City)
		}
	}
}
