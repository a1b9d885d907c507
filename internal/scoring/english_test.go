package scoring

import (
	"strings"
	"testing"

	"github.com/rhtools/cv-screener/internal/candidate"
	"github.com/rhtools/cv-screener/internal/lexicon"
)

func TestDetectEnglishLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect string
	}{
		{
			name:   "canonical level on signal line",
			text:   "Compétences\nAnglais niveau B2\nPython",
			expect: "B2",
		},
		{
			name:   "highest level wins within one line",
			text:   "anglais B2 (anciennement B1)",
			expect: "B2",
		},
		{
			name:   "earliest signal line with a level short-circuits",
			text:   "anglais B1\nenglish C2",
			expect: "B1",
		},
		{
			name:   "fuzzy vocabulary yields mention",
			text:   "Anglais courant",
			expect: "Mentionné (anglais courant)",
		},
		{
			name:   "signal line without level becomes fallback mention",
			text:   "pratique de l'anglais au travail",
			expect: "Mentionné (pratique de l'anglais au travail)",
		},
		{
			name:   "no signal line at all",
			text:   "Développeur Python\nParis",
			expect: lexicon.Unspecified,
		},
		{
			name:   "empty text",
			text:   "",
			expect: lexicon.Unspecified,
		},
		{
			name:   "binary garbage is handled",
			text:   "\x00\xff\xfe\n\x01english\x02\n",
			expect: "Mentionné (\x01english\x02)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectEnglishLevel(tt.text); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestDetectEnglishLevelIsIdempotent(t *testing.T) {
	t.Parallel()

	text := "anglais B2\nenglish fluent"
	first := DetectEnglishLevel(text)
	second := DetectEnglishLevel(text)
	if first != second {
		t.Fatalf("detection not idempotent: %q then %q", first, second)
	}
}

func TestEnglishIndex(t *testing.T) {
	t.Parallel()

	if got := EnglishIndex("B2"); got != 3 {
		t.Fatalf("expected index 3 for B2, got %d", got)
	}
	if got := EnglishIndex("Mentionné (anglais courant)"); got != 0 {
		t.Fatalf("expected index 0 for mention, got %d", got)
	}
	if got := EnglishIndex(lexicon.Unspecified); got != 0 {
		t.Fatalf("expected index 0 for unspecified, got %d", got)
	}
}

func TestEnglishBadge(t *testing.T) {
	t.Parallel()

	badge := EnglishBadge(lexicon.Unspecified)
	if badge.Category != candidate.BadgeUnspecified {
		t.Fatalf("expected red badge, got %q", badge.Category)
	}

	badge = EnglishBadge("Mentionné (anglais courant)")
	if badge.Category != candidate.BadgeMentioned {
		t.Fatalf("expected yellow badge, got %q", badge.Category)
	}
	if !strings.Contains(badge.Label, "anglais courant") {
		t.Fatalf("mention badge should carry the raw line, got %q", badge.Label)
	}

	badge = EnglishBadge("C1")
	if badge.Category != candidate.BadgeLeveled {
		t.Fatalf("expected green badge, got %q", badge.Category)
	}
	if badge.Label != "Niveau C1" {
		t.Fatalf("unexpected leveled label: %q", badge.Label)
	}
}
