package scoring

import (
	"strings"

	"github.com/rhtools/cv-screener/internal/candidate"
	"github.com/rhtools/cv-screener/internal/lexicon"
)

const mentionedPrefix = "Mentionné ("

// DetectEnglishLevel scans the text line by line for English mentions and
// returns one of three shapes:
//   - a canonical level code ("B2") when a signal line names one; within a
//     line the highest level wins, and the earliest matching signal line
//     short-circuits the scan,
//   - "Mentionné (<line>)" when English is mentioned with only fuzzy
//     vocabulary, or with no recognizable level at all (the last signal
//     line seen is kept as fallback),
//   - the "Non précisé" sentinel when no line mentions English.
func DetectEnglishLevel(text string) string {
	lines := strings.Split(strings.ToLower(text), "\n")

	fallback := ""
	haveFallback := false

	for _, line := range lines {
		if !strings.Contains(line, "anglais") && !strings.Contains(line, "english") {
			continue
		}

		clean := strings.TrimSpace(line)
		fallback = clean
		haveFallback = true

		// Highest level first, so "B2 (ex B1)" resolves to B2.
		for i := len(lexicon.LevelOrder) - 1; i >= 0; i-- {
			level := lexicon.LevelOrder[i]
			if strings.Contains(clean, strings.ToLower(level)) {
				return level
			}
		}

		for word := range lexicon.FuzzyLevels {
			if strings.Contains(clean, word) {
				return mentionedPrefix + clean + ")"
			}
		}
	}

	if haveFallback {
		return mentionedPrefix + fallback + ")"
	}

	return lexicon.Unspecified
}

// EnglishIndex returns the rank of a detected level on the canonical scale,
// or 0 for mentioned/unspecified results.
func EnglishIndex(level string) int {
	for i, canonical := range lexicon.LevelOrder {
		if level == canonical {
			return i
		}
	}
	return 0
}

// EnglishBadge classifies a detected level into the tri-state confidence
// badge shown to the operator.
func EnglishBadge(level string) candidate.Badge {
	switch {
	case level == lexicon.Unspecified:
		return candidate.Badge{Category: candidate.BadgeUnspecified, Label: lexicon.Unspecified}
	case strings.HasPrefix(level, mentionedPrefix):
		return candidate.Badge{Category: candidate.BadgeMentioned, Label: level}
	default:
		return candidate.Badge{Category: candidate.BadgeLeveled, Label: "Niveau " + strings.ToUpper(level)}
	}
}
