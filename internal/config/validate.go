package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Streak.validate(); err != nil {
		return fmt.Errorf("streak: %w", err)
	}
	if err := c.Jobs.validate(); err != nil {
		return fmt.Errorf("jobs: %w", err)
	}
	return nil
}

func (s *StreakConfig) validate() error {
	milestones, err := ParseMilestones(s.MilestonesRaw)
	if err != nil {
		return fmt.Errorf("milestones: %w", err)
	}
	if len(milestones) == 0 {
		return fmt.Errorf("milestones must not be empty")
	}
	s.Milestones = milestones
	return nil
}

func (j *JobsConfig) validate() error {
	if j.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", j.Concurrency)
	}
	if _, err := cron.ParseStandard(j.ReconcileSpec); err != nil {
		return fmt.Errorf("reconcile_spec %q: %w", j.ReconcileSpec, err)
	}
	if _, err := cron.ParseStandard(j.ReminderSpec); err != nil {
		return fmt.Errorf("reminder_spec %q: %w", j.ReminderSpec, err)
	}
	return nil
}

// ParseMilestones parses a comma-separated string of day counts
// (e.g. "3,7,14") into a strictly ascending slice of positive ints.
// An empty string returns a nil slice.
func ParseMilestones(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	milestones := make([]int, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid milestone %q: %w", p, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("milestone must be positive (got %d)", n)
		}
		if len(milestones) > 0 && n <= milestones[len(milestones)-1] {
			return nil, fmt.Errorf("milestones must be strictly ascending (got %d after %d)", n, milestones[len(milestones)-1])
		}
		milestones = append(milestones, n)
	}

	return milestones, nil
}
