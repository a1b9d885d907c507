package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rhtools/cv-screener/internal/candidate"
)

type badgeFilter struct {
	category string
}

// NewBadge creates the English badge category filter. It is never driven by
// a toggle: a configured category other than "all" always applies.
func NewBadge() Filter {
	return &badgeFilter{category: BadgeAll}
}

func (f *badgeFilter) Name() string { return "badge" }

func (f *badgeFilter) Disable(string) {}

func (f *badgeFilter) IsEnabled() bool { return true }

func (f *badgeFilter) Validate(cfg *Config) error {
	f.category = BadgeAll
	if cfg == nil || cfg.Badge == "" {
		return nil
	}

	switch cfg.Badge {
	case BadgeAll,
		string(candidate.BadgeUnspecified),
		string(candidate.BadgeMentioned),
		string(candidate.BadgeLeveled):
		f.category = cfg.Badge
		return nil
	default:
		return fmt.Errorf("unknown badge category %q (expected all, red, yellow or green)", cfg.Badge)
	}
}

func (f *badgeFilter) Apply(_ context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	if f.category == BadgeAll {
		return c, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept, dropped := c.Keep(func(item *candidate.Candidate) bool {
		return string(item.EnglishBadge.Category) == f.category
	})

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates outside badge category",
			zap.String("category", f.category),
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", kept.Len()),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(dropped), Left: kept.Len()}, nil
}

func (f *badgeFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"category": f.category},
	}
}
