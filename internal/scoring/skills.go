// Package scoring implements the signal extractors that turn raw CV text
// into structured attributes, plus the aggregator composing them over a
// whole batch. Every extractor is a pure function, total over arbitrary
// input: empty text, binary garbage and extraction-error messages all
// degrade to sentinel values instead of failing.
//
// Matching is deliberately substring containment over lowercased text, not
// tokenization. Upgrading to word-boundary matching would change observable
// filtering results.
package scoring

import "strings"

// NormalizeKeywords lowercases and trims the skill list, dropping empty
// entries and duplicates while preserving order.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}

// SkillScore counts how many distinct keywords occur anywhere in the text,
// case-insensitive. A keyword inside a longer token still counts. An empty
// keyword list scores 0 for any text.
func SkillScore(text string, keywords []string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, kw := range NormalizeKeywords(keywords) {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	return score
}
