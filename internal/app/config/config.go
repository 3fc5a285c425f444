package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel         LogLeveler       `mapstructure:"LOG_LEVEL"`
	HTTP             HTTP             `mapstructure:",squash"`
	Redis            Redis            `mapstructure:",squash"`
	Timetable        Timetable        `mapstructure:",squash"`
	ScheduleProvider ScheduleProvider `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Timetable controls layout and caching. An empty WarmerSchedule disables the
// cache warmer.
type Timetable struct {
	HubCode         string        `mapstructure:"TIMETABLE_HUB_CODE"`
	TickMinutes     int           `mapstructure:"TIMETABLE_TICK_MINUTES"`
	CacheExpiration time.Duration `mapstructure:"TIMETABLE_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"TIMETABLE_LOCK_TIMEOUT"`
	WarmerSchedule  string        `mapstructure:"TIMETABLE_WARMER_SCHEDULE"`
}

// ScheduleProvider points at the scheduling service. A file path or file://
// url serves a snapshot from disk instead.
type ScheduleProvider struct {
	URL          string        `mapstructure:"SCHEDULE_PROVIDER_URL"`
	Timeout      time.Duration `mapstructure:"SCHEDULE_PROVIDER_TIMEOUT"`
	MaxRetries   int           `mapstructure:"SCHEDULE_PROVIDER_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"SCHEDULE_PROVIDER_RATE_LIMIT"`
}
