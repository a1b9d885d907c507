package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/rhtools/cv-screener/internal/candidate"
)

// commuteFilter keeps candidates whose commute estimate for one mode stays
// under a ceiling. Candidates with an unresolved location carry the 999
// sentinel, so any realistic ceiling drops them.
type commuteFilter struct {
	disabled bool
	reason   string
	name     string
	mode     string
	ceiling  int

	maxFromConfig func(cfg *Config) int
	minutes       func(item *candidate.Candidate) int
}

// NewTransportCommute creates a filter on public transport commute minutes.
func NewTransportCommute() Filter {
	return &commuteFilter{
		name: "commute_transport",
		mode: "transport",
		maxFromConfig: func(cfg *Config) int {
			return cfg.MaxCommuteTransport
		},
		minutes: func(item *candidate.Candidate) int {
			return item.CommuteTransport
		},
	}
}

// NewCarCommute creates a filter on car commute minutes.
func NewCarCommute() Filter {
	return &commuteFilter{
		name: "commute_car",
		mode: "car",
		maxFromConfig: func(cfg *Config) int {
			return cfg.MaxCommuteCar
		},
		minutes: func(item *candidate.Candidate) int {
			return item.CommuteCar
		},
	}
}

func (f *commuteFilter) Name() string { return f.name }

func (f *commuteFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *commuteFilter) IsEnabled() bool { return !f.disabled }

func (f *commuteFilter) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	ceiling := f.maxFromConfig(cfg)
	if ceiling <= 0 {
		return fmt.Errorf("maximum %s commute must be positive, got %d", f.mode, ceiling)
	}
	f.ceiling = ceiling
	return nil
}

func (f *commuteFilter) Apply(_ context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	kept, dropped := c.Keep(func(item *candidate.Candidate) bool {
		return f.minutes(item) <= f.ceiling
	})

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates above commute ceiling",
			zap.String("mode", f.mode),
			zap.Int("ceiling_minutes", f.ceiling),
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", kept.Len()),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(dropped), Left: kept.Len()}, nil
}

func (f *commuteFilter) Status() Status {
	details := map[string]string{"mode": f.mode}
	if f.ceiling > 0 {
		details["ceiling_minutes"] = strconv.Itoa(f.ceiling)
	}
	return Status{Name: f.name, Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
