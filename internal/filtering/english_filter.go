package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/rhtools/cv-screener/internal/candidate"
	"github.com/rhtools/cv-screener/internal/lexicon"
)

type englishFilter struct {
	disabled bool
	reason   string
	minLevel string
	minIndex int
}

// NewEnglish creates a filter that keeps candidates whose detected English
// level ranks at or above the configured minimum. Fuzzy mentions and
// unspecified levels rank 0, so any minimum above A1 drops them.
func NewEnglish() Filter {
	return &englishFilter{}
}

func (f *englishFilter) Name() string { return "english" }

func (f *englishFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *englishFilter) IsEnabled() bool { return !f.disabled }

func (f *englishFilter) Validate(cfg *Config) error {
	if cfg == nil || cfg.MinEnglishLevel == "" {
		return fmt.Errorf("minimum english level is required")
	}

	found := false
	for _, level := range lexicon.LevelOrder {
		if level == cfg.MinEnglishLevel {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown english level %q (expected one of %v)", cfg.MinEnglishLevel, lexicon.LevelOrder)
	}

	f.minLevel = cfg.MinEnglishLevel
	f.minIndex = lexicon.LevelIndex(cfg.MinEnglishLevel)
	return nil
}

func (f *englishFilter) Apply(_ context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	kept, dropped := c.Keep(func(item *candidate.Candidate) bool {
		return item.EnglishIndex >= f.minIndex
	})

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates below minimum english level",
			zap.String("minimum_level", f.minLevel),
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", kept.Len()),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(dropped), Left: kept.Len()}, nil
}

func (f *englishFilter) Status() Status {
	details := map[string]string{}
	if f.minLevel != "" {
		details["minimum_level"] = f.minLevel
		details["minimum_index"] = strconv.Itoa(f.minIndex)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
