package scoring

import "testing"

func TestSkillScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		keywords []string
		expect   int
	}{
		{
			name:     "counts case-insensitive matches",
			text:     "Développeur Python et SQL",
			keywords: []string{"python", "SQL", "React"},
			expect:   2,
		},
		{
			name:     "empty keyword list scores zero",
			text:     "Python everywhere",
			keywords: nil,
			expect:   0,
		},
		{
			name:     "blank entries are discarded",
			text:     "java developer",
			keywords: []string{" ", "", "java"},
			expect:   1,
		},
		{
			name:     "duplicate keywords count once",
			text:     "go go go",
			keywords: []string{"go", "Go", " go "},
			expect:   1,
		},
		{
			name:     "substring inside a longer token still counts",
			text:     "expert en javascript",
			keywords: []string{"java"},
			expect:   1,
		},
		{
			name:     "empty text scores zero",
			text:     "",
			keywords: []string{"python"},
			expect:   0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SkillScore(tt.text, tt.keywords); got != tt.expect {
				t.Fatalf("expected score %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestNormalizeKeywords(t *testing.T) {
	t.Parallel()

	got := NormalizeKeywords([]string{" Python ", "SQL", "python", "", "  "})
	if len(got) != 2 || got[0] != "python" || got[1] != "sql" {
		t.Fatalf("unexpected normalized keywords: %v", got)
	}
}
