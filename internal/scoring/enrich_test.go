package scoring

import (
	"reflect"
	"testing"

	"github.com/rhtools/cv-screener/internal/candidate"
	"github.com/rhtools/cv-screener/internal/lexicon"
)

func TestEnrichDerivesAllAttributes(t *testing.T) {
	t.Parallel()

	batch := &candidate.Candidates{
		Items: []*candidate.Candidate{
			{
				Name:   "a.pdf",
				Text:   "CDI 2019-2021\nniveau anglais B2\nbasé à torcy",
				Status: candidate.StatusPending,
			},
		},
	}

	Enrich(batch, []string{"Python", "SQL"})

	item := batch.Items[0]
	if item.Score != 0 {
		t.Fatalf("expected score 0, got %d", item.Score)
	}
	if item.EnglishLevel != "B2" || item.EnglishIndex != 3 {
		t.Fatalf("unexpected english detection: %q / %d", item.EnglishLevel, item.EnglishIndex)
	}
	if item.EnglishBadge.Category != candidate.BadgeLeveled {
		t.Fatalf("expected leveled badge, got %q", item.EnglishBadge.Category)
	}
	if !item.HasExperience || item.ExperienceTypes != "CDI" || item.ExperienceCount != 1 {
		t.Fatalf("unexpected experience: %v %q %d", item.HasExperience, item.ExperienceTypes, item.ExperienceCount)
	}
	if item.Location != "torcy" || item.CommuteTransport != 15 || item.CommuteCar != 20 {
		t.Fatalf("unexpected location: %q %d/%d", item.Location, item.CommuteTransport, item.CommuteCar)
	}
	if item.CommuteDisplay != "15min (T) / 20min (V)" {
		t.Fatalf("unexpected commute display: %q", item.CommuteDisplay)
	}
	if item.Status != candidate.StatusPending {
		t.Fatalf("status must not change during enrichment, got %q", item.Status)
	}
}

func TestEnrichIsIdempotent(t *testing.T) {
	t.Parallel()

	build := func() *candidate.Candidates {
		return &candidate.Candidates{
			Items: []*candidate.Candidate{
				{Name: "a.pdf", Text: "stage 2022\nanglais courant\nparis", Status: candidate.StatusSelected},
				{Name: "b.pdf", Text: "", Status: candidate.StatusPending},
			},
		}
	}

	skills := []string{"python"}

	once := build()
	Enrich(once, skills)

	twice := build()
	Enrich(Enrich(twice, skills), skills)

	for i := range once.Items {
		if !reflect.DeepEqual(once.Items[i], twice.Items[i]) {
			t.Fatalf("enrichment not idempotent for %s:\nonce:  %+v\ntwice: %+v",
				once.Items[i].Name, once.Items[i], twice.Items[i])
		}
	}
}

func TestEnrichEmptyTextDegradesToSentinels(t *testing.T) {
	t.Parallel()

	batch := &candidate.Candidates{
		Items: []*candidate.Candidate{{Name: "empty.pdf", Text: ""}},
	}
	Enrich(batch, []string{"python"})

	item := batch.Items[0]
	if item.EnglishLevel != lexicon.Unspecified {
		t.Fatalf("expected unspecified english, got %q", item.EnglishLevel)
	}
	if item.Location != lexicon.UnknownLocation {
		t.Fatalf("expected unknown location, got %q", item.Location)
	}
	if item.CommuteTransport != lexicon.SentinelCommute || item.CommuteCar != lexicon.SentinelCommute {
		t.Fatalf("expected sentinel commute, got %d/%d", item.CommuteTransport, item.CommuteCar)
	}
	if item.ExperienceDetail != lexicon.NoClearLine {
		t.Fatalf("expected no-clear-line sentinel, got %q", item.ExperienceDetail)
	}
}
