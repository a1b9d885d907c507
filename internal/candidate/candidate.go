// Package candidate defines the candidate record produced by enrichment and
// the collection helpers the filtering pipeline and the CLI operate on.
package candidate

import (
	"encoding/json"
	"os"
	"sort"
)

// Status is the operator-assigned review state. It is the only field a human
// may change after enrichment.
type Status string

const (
	StatusPending  Status = "pending"
	StatusSelected Status = "selected"
	StatusRejected Status = "rejected"
)

// BadgeCategory classifies how confident the English detection is.
type BadgeCategory string

const (
	// BadgeUnspecified means no English mention was found at all.
	BadgeUnspecified BadgeCategory = "red"
	// BadgeMentioned means English was mentioned without a canonical level.
	BadgeMentioned BadgeCategory = "yellow"
	// BadgeLeveled means a canonical A1..C2 level was detected.
	BadgeLeveled BadgeCategory = "green"
)

// Badge carries the English confidence category together with its
// human-readable label ("Non précisé", "Mentionné (...)", "Niveau B2").
type Badge struct {
	Category BadgeCategory `json:"category"`
	Label    string        `json:"label"`
}

// Candidate is one ingested CV. Name and Text are set at ingestion and never
// change; the derived fields are write-once outputs of enrichment; Status is
// operator-mutable.
type Candidate struct {
	Name string `json:"name" mapstructure:"name"`
	Path string `json:"path,omitempty" mapstructure:"path"`
	Text string `json:"-" mapstructure:"-"`

	Score            int      `json:"score" mapstructure:"score"`
	EnglishLevel     string   `json:"english_level" mapstructure:"english_level"`
	EnglishIndex     int      `json:"english_index" mapstructure:"english_index"`
	EnglishBadge     Badge    `json:"english_badge" mapstructure:"-"`
	HasExperience    bool     `json:"has_experience" mapstructure:"has_experience"`
	ExperienceTypes  string   `json:"experience_types" mapstructure:"experience_types"`
	ExperienceCount  int      `json:"experience_count" mapstructure:"experience_count"`
	ExperienceDetail string   `json:"experience_detail" mapstructure:"experience_detail"`
	Cities           []string `json:"cities,omitempty" mapstructure:"-"`
	Location         string   `json:"location" mapstructure:"location"`
	CommuteTransport int      `json:"commute_transport" mapstructure:"commute_transport"`
	CommuteCar       int      `json:"commute_car" mapstructure:"commute_car"`
	CommuteDisplay   string   `json:"commute_display" mapstructure:"commute_display"`

	Status Status `json:"status" mapstructure:"status"`
}

// Candidates is an ordered collection of candidate records.
type Candidates struct {
	Items []*Candidate
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) FindByName(name string) *Candidate {
	for _, item := range c.Items {
		if item.Name == name {
			return item
		}
	}
	return nil
}

func (c *Candidates) Names() []string {
	names := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		names = append(names, item.Name)
	}
	return names
}

// Keep returns a new collection containing the items the predicate accepts,
// preserving order, together with the names of the dropped items. The input
// collection is left untouched.
func (c *Candidates) Keep(pred func(*Candidate) bool) (*Candidates, []string) {
	kept := &Candidates{Items: make([]*Candidate, 0, len(c.Items))}
	var dropped []string
	for _, item := range c.Items {
		if pred(item) {
			kept.Items = append(kept.Items, item)
			continue
		}
		dropped = append(dropped, item.Name)
	}
	return kept, dropped
}

// WithStatus returns the items currently carrying the given status.
func (c *Candidates) WithStatus(status Status) []*Candidate {
	var out []*Candidate
	for _, item := range c.Items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

// SortByRank orders the collection by score descending, then english index
// descending. The sort is stable: ties keep their original relative order.
func (c *Candidates) SortByRank() {
	sort.SliceStable(c.Items, func(i, j int) bool {
		if c.Items[i].Score != c.Items[j].Score {
			return c.Items[i].Score > c.Items[j].Score
		}
		return c.Items[i].EnglishIndex > c.Items[j].EnglishIndex
	})
}

// MergeStatus applies statuses remembered in old onto the fresh collection,
// matching records by name. Fresh records without a remembered status keep
// whatever they carry (pending on first enrichment). Returns the fresh
// collection for chaining.
func MergeStatus(old, fresh *Candidates) *Candidates {
	if old == nil || fresh == nil {
		return fresh
	}
	for _, item := range fresh.Items {
		if prev := old.FindByName(item.Name); prev != nil && prev.Status != "" {
			item.Status = prev.Status
		}
	}
	return fresh
}

// DumpToTmpFile writes the collection as indented JSON to a temp file and
// returns its path.
func (c *Candidates) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidates_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return file.Name(), nil
}
