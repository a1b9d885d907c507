package scoring

import (
	"regexp"
	"sort"
	"strings"

	"github.com/rhtools/cv-screener/internal/lexicon"
)

var yearPattern = regexp.MustCompile(`(20\d{2}|19\d{2})`)

// Experience is the structured result of scanning a CV for work history
// signals.
type Experience struct {
	// Found is true when at least one line counted as experience.
	Found bool
	// Types is the sorted, comma-joined list of distinct experience types,
	// or the "Non précisé" sentinel when none were recognized.
	Types string
	// Count is the number of lines that counted.
	Count int
	// Detail is the first counted line verbatim, or the "Aucune phrase
	// claire" sentinel.
	Detail string
}

// ExtractExperience scans lowercased lines for work history. Lines carrying
// intent phrases ("je cherche", "objectif", ...) never count, even when they
// also contain an experience keyword. A remaining line counts when it names
// an experience type, or when it contains a 19xx/20xx year together with a
// range marker ("-" or "à"). One line may contribute several types.
func ExtractExperience(text string) Experience {
	lines := strings.Split(strings.ToLower(text), "\n")

	count := 0
	typesFound := make(map[string]bool)
	var details []string

	for _, line := range lines {
		clean := strings.TrimSpace(line)

		excluded := false
		for _, phrase := range lexicon.ExcludedPhrases {
			if strings.Contains(clean, phrase) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		matchType := false
		for kw := range lexicon.ExperienceKeywords {
			if strings.Contains(clean, kw) {
				matchType = true
				break
			}
		}

		matchDate := yearPattern.MatchString(clean) &&
			(strings.Contains(clean, "-") || strings.Contains(clean, "à"))

		if !matchType && !matchDate {
			continue
		}

		for kw, label := range lexicon.ExperienceKeywords {
			if strings.Contains(clean, kw) {
				typesFound[label] = true
			}
		}

		count++
		details = append(details, clean)
	}

	result := Experience{
		Found:  count > 0,
		Count:  count,
		Types:  lexicon.Unspecified,
		Detail: lexicon.NoClearLine,
	}

	if len(typesFound) > 0 {
		labels := make([]string, 0, len(typesFound))
		for label := range typesFound {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		result.Types = strings.Join(labels, ", ")
	}

	if len(details) > 0 {
		result.Detail = details[0]
	}

	return result
}
