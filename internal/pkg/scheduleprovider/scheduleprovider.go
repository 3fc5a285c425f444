package scheduleprovider

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
)

// config for schedule provider
type ScheduleProviderConfig struct {
	URL          string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      RateLimiter
	// Backoff is the first retry delay, doubled on every further attempt.
	Backoff time.Duration
}

// ScheduleProvider returns the weekly gantt data for the week containing date
// (YYYY-MM-DD).
type ScheduleProvider interface {
	FetchWeek(ctx context.Context, date string) (dto.WeeklySchedule, error)
}

// RateLimiter is satisfied by *redis_rate.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// IsRemote reports whether url points at the HTTP scheduling service rather
// than a snapshot file.
func IsRemote(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
