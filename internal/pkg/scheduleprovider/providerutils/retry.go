package providerutils

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider"
)

const DefaultBackoff = 200 * time.Millisecond

// Attempt performs a single fetch.
type Attempt func(ctx context.Context) (dto.WeeklySchedule, error)

// Retry runs attempt until it succeeds or maxRetries extra attempts have been
// spent. Only ErrProviderInternalError is retried; any other error is returned
// as is. Delays grow as backoff * 2^attempt.
func Retry(ctx context.Context, name string, maxRetries int, backoff time.Duration,
	attempt Attempt) (dto.WeeklySchedule, error) {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		select {
		case <-ctx.Done():
			return dto.WeeklySchedule{}, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
		default:
		}

		schedule, err := attempt(ctx)
		if err == nil {
			return schedule, nil
		}

		if !errors.Is(err, ErrProviderInternalError) {
			return dto.WeeklySchedule{}, err
		}

		lastErr = err
		slog.ErrorContext(ctx, "failed to call schedule provider", "provider", name,
			"attempt", i+1, "error", err)

		if i < maxRetries {
			wait := backoff * time.Duration(1<<i)
			slog.InfoContext(ctx, "retrying with exponential backoff", "backoff", wait,
				"next_attempt", i+2)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return dto.WeeklySchedule{}, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}
	}

	return dto.WeeklySchedule{}, ErrRetryExceeded.WithCause(
		fmt.Errorf("%d attempts: %w", maxRetries+1, lastErr))
}

// Allow consumes one token of the provider's per-second budget. A nil limiter
// or a non-positive rps disables limiting.
func Allow(ctx context.Context, limiter scheduleprovider.RateLimiter, name string, rps int) error {
	if limiter == nil || rps <= 0 {
		return nil
	}

	res, err := limiter.Allow(ctx, fmt.Sprintf("limit:%s", name), redis_rate.PerSecond(rps))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrProviderRateLimitExceeded
	}

	return nil
}
