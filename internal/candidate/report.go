package candidate

import "sort"

// Summary aggregates review progress across a collection, mirroring the
// recruiter-facing statistics panel.
type Summary struct {
	Total     int
	Selected  int
	Rejected  int
	Pending   int
	MeanScore float64

	// TopLocations lists the most frequent resolved locations, most common
	// first, ties broken alphabetically for stable output.
	TopLocations []LocationCount

	// Badges counts candidates per English badge category.
	Badges map[BadgeCategory]int
}

type LocationCount struct {
	Location string
	Count    int
}

// Summarize computes review statistics over the collection.
func (c *Candidates) Summarize() Summary {
	summary := Summary{
		Total:  len(c.Items),
		Badges: make(map[BadgeCategory]int),
	}

	scoreSum := 0
	locations := make(map[string]int)

	for _, item := range c.Items {
		switch item.Status {
		case StatusSelected:
			summary.Selected++
		case StatusRejected:
			summary.Rejected++
		default:
			summary.Pending++
		}

		scoreSum += item.Score
		locations[item.Location]++
		summary.Badges[item.EnglishBadge.Category]++
	}

	if summary.Total > 0 {
		summary.MeanScore = float64(scoreSum) / float64(summary.Total)
	}

	for location, count := range locations {
		summary.TopLocations = append(summary.TopLocations, LocationCount{
			Location: location,
			Count:    count,
		})
	}
	sort.Slice(summary.TopLocations, func(i, j int) bool {
		if summary.TopLocations[i].Count != summary.TopLocations[j].Count {
			return summary.TopLocations[i].Count > summary.TopLocations[j].Count
		}
		return summary.TopLocations[i].Location < summary.TopLocations[j].Location
	})
	if len(summary.TopLocations) > 3 {
		summary.TopLocations = summary.TopLocations[:3]
	}

	return summary
}
