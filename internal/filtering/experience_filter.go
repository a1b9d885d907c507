package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/rhtools/cv-screener/internal/candidate"
)

type experienceFilter struct {
	disabled      bool
	reason        string
	minExperience int
}

// NewExperience creates a filter that keeps candidates with at least one
// detected experience line.
//
// TODO: decide whether min-experience should gate on experience_count. The
// threshold is parsed and reported in Status but only the boolean flag is
// applied today; changing that silently would alter existing screenings.
func NewExperience() Filter {
	return &experienceFilter{}
}

func (f *experienceFilter) Name() string { return "experience" }

func (f *experienceFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *experienceFilter) IsEnabled() bool { return !f.disabled }

func (f *experienceFilter) Validate(cfg *Config) error {
	f.minExperience = 0
	if cfg != nil {
		f.minExperience = cfg.MinExperience
	}
	return nil
}

func (f *experienceFilter) Apply(_ context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	kept, dropped := c.Keep(func(item *candidate.Candidate) bool {
		return item.HasExperience
	})

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates without detected experience",
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", kept.Len()),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(dropped), Left: kept.Len()}, nil
}

func (f *experienceFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{
			"min_experience":         strconv.Itoa(f.minExperience),
			"min_experience_applied": "false",
		},
	}
}
