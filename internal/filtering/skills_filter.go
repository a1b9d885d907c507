package filtering

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rhtools/cv-screener/internal/candidate"
)

type skillsFilter struct {
	disabled bool
	reason   string
	skills   []string
}

// NewSkills creates a filter that keeps candidates matching at least one
// configured skill keyword.
func NewSkills() Filter {
	return &skillsFilter{}
}

func (f *skillsFilter) Name() string { return "skills" }

func (f *skillsFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *skillsFilter) IsEnabled() bool { return !f.disabled }

func (f *skillsFilter) Validate(cfg *Config) error {
	f.skills = nil
	if cfg != nil {
		f.skills = append(f.skills, cfg.Skills...)
	}
	return nil
}

func (f *skillsFilter) Apply(_ context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	kept, dropped := c.Keep(func(item *candidate.Candidate) bool {
		return item.Score > 0
	})

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates without any skill match",
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", kept.Len()),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(dropped), Left: kept.Len()}, nil
}

func (f *skillsFilter) Status() Status {
	details := map[string]string{}
	if len(f.skills) > 0 {
		details["skills"] = strings.Join(f.skills, ",")
		details["count"] = strconv.Itoa(len(f.skills))
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
