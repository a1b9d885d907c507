// Package filtering implements the deterministic candidate selection
// pipeline: an ordered list of toggleable predicate steps applied over an
// enriched batch, followed by a stable rank by score and English level.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rhtools/cv-screener/internal/candidate"
	"github.com/rhtools/cv-screener/internal/scoring"
)

// Filter represents a single filtering step applied to candidates.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains the selection criteria consumed by the filters.
type Config struct {
	// Skills is the active keyword list; the pipeline re-enriches with it
	// before applying any step, so filtering always sees fresh attributes.
	Skills []string

	MinEnglishLevel string
	// MinExperience is accepted for configuration compatibility but is not
	// applied as a predicate; only the has-experience flag gates inclusion.
	MinExperience       int
	MaxCommuteTransport int
	MaxCommuteCar       int

	// Badge restricts results to one badge category. BadgeAll disables the
	// restriction. Unlike the toggled steps, a non-all badge always applies.
	Badge string
}

// BadgeAll disables the badge category restriction.
const BadgeAll = "all"

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run re-enriches the batch with the configured skill list, executes the
// enabled filters sequentially and returns the surviving candidates ranked
// by score descending, then English index descending. Ties keep their
// original relative order.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, c *candidate.Candidates) (*candidate.Candidates, error) {
	if cfg == nil {
		return nil, fmt.Errorf("filtering config is required")
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	scoring.Enrich(c, cfg.Skills)

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		c = next
	}

	c.SortByRank()

	return c, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// Steps builds the canonical step list. Steps whose toggle is false are kept
// in the list but disabled, so Describe still reports them. The badge step
// is always present and applies itself whenever a specific category is
// configured.
func Steps(useSkills, useEnglish, useExperience, useTransport, useCar bool) []Filter {
	steps := []Filter{
		NewSkills(),
		NewEnglish(),
		NewExperience(),
		NewTransportCommute(),
		NewCarCommute(),
		NewBadge(),
	}

	const toggleOff = "toggle off in config"
	if !useSkills {
		DisableByName(steps, "skills", toggleOff)
	}
	if !useEnglish {
		DisableByName(steps, "english", toggleOff)
	}
	if !useExperience {
		DisableByName(steps, "experience", toggleOff)
	}
	if !useTransport {
		DisableByName(steps, "commute_transport", toggleOff)
	}
	if !useCar {
		DisableByName(steps, "commute_car", toggleOff)
	}

	return steps
}
