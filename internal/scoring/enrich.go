package scoring

import (
	"github.com/rhtools/cv-screener/internal/candidate"
	"github.com/rhtools/cv-screener/internal/lexicon"
)

// Enrich computes every derived attribute for each record in the batch.
// Records are enriched independently; Name, Text and Status are never
// touched. Enriching twice with the same skill list yields identical
// attributes, so the filtering pipeline can re-enrich on every call.
func Enrich(c *candidate.Candidates, skills []string) *candidate.Candidates {
	if c == nil {
		return c
	}

	keywords := NormalizeKeywords(skills)

	for _, item := range c.Items {
		enrichOne(item, keywords)
	}

	return c
}

func enrichOne(item *candidate.Candidate, keywords []string) {
	item.Score = SkillScore(item.Text, keywords)

	level := DetectEnglishLevel(item.Text)
	item.EnglishLevel = level
	item.EnglishIndex = EnglishIndex(level)
	item.EnglishBadge = EnglishBadge(level)

	exp := ExtractExperience(item.Text)
	item.HasExperience = exp.Found
	item.ExperienceTypes = exp.Types
	item.ExperienceCount = exp.Count
	item.ExperienceDetail = exp.Detail

	cities, _ := ExtractLocations(item.Text)
	item.Cities = cities
	item.Location = ResolveLocation(cities)
	item.CommuteTransport, item.CommuteCar = lexicon.Commute(item.Location)
	item.CommuteDisplay = CommuteDisplay(item.CommuteTransport, item.CommuteCar)
}
