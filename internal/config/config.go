package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Streak   StreakConfig   `yaml:"streak"`
	Jobs     JobsConfig     `yaml:"jobs"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// StreakConfig holds streak engine parameters.
type StreakConfig struct {
	MilestonesRaw string `yaml:"milestones" env:"STREAK_MILESTONES" env-default:"3,7,14,30,60,100,180,365"`

	// Milestones is parsed from MilestonesRaw during validation.
	Milestones []int `yaml:"-" env:"-"`
}

// JobsConfig holds the schedules of the background jobs. The cron specs are
// evaluated in the fixed practice zone (UTC+7), not the host timezone.
type JobsConfig struct {
	ReconcileSpec string `yaml:"reconcile_spec" env:"JOBS_RECONCILE_SPEC" env-default:"5 0 * * *"`
	ReminderSpec  string `yaml:"reminder_spec"  env:"JOBS_REMINDER_SPEC"  env-default:"0 21 * * *"`
	Concurrency   int    `yaml:"concurrency"    env:"JOBS_CONCURRENCY"    env-default:"8"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
