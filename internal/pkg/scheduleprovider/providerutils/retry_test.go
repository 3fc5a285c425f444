package providerutils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRetry_Closure(t *testing.T) {
	week := dto.WeeklySchedule{WeekStart: "2025-01-06", WeekEnd: "2025-01-12"}

	retryRequest := func(maxRetries int, results []error, wantCalls int, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			calls := 0
			got, err := Retry(context.Background(), "test", maxRetries, time.Millisecond,
				func(context.Context) (dto.WeeklySchedule, error) {
					res := results[calls]
					calls++
					if res != nil {
						return dto.WeeklySchedule{}, res
					}
					return week, nil
				})

			assert.Equal(t, wantCalls, calls)
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				assert.Equal(t, dto.WeeklySchedule{}, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, week, got)
		}
	}

	t.Run("first_attempt_succeeds", retryRequest(2, []error{nil}, 1, nil))
	t.Run("recovers_after_internal_error", retryRequest(2,
		[]error{ErrProviderInternalError, ErrProviderInternalError, nil}, 3, nil))
	t.Run("retry_exceeded", retryRequest(1,
		[]error{ErrProviderInternalError, ErrProviderInternalError}, 2, ErrRetryExceeded))
	t.Run("rate_limit_not_retried", retryRequest(3,
		[]error{ErrProviderRateLimitExceeded}, 1, ErrProviderRateLimitExceeded))
	t.Run("not_found_not_retried", retryRequest(3,
		[]error{ErrScheduleNotFound}, 1, ErrScheduleNotFound))
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Retry(ctx, "test", 3, time.Millisecond, func(context.Context) (dto.WeeklySchedule, error) {
		t.Fatal("attempt must not run after cancellation")
		return dto.WeeklySchedule{}, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAllow_Closure(t *testing.T) {
	allowRequest := func(rps int, mockSetup func(m *scheduleprovider.MockRateLimiter), wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			m := scheduleprovider.NewMockRateLimiter(t)
			mockSetup(m)

			err := Allow(context.Background(), m, "Upstream", rps)
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}
			assert.NoError(t, err)
		}
	}

	t.Run("allowed", allowRequest(5, func(m *scheduleprovider.MockRateLimiter) {
		m.On("Allow", mock.Anything, "limit:Upstream", redis_rate.PerSecond(5)).
			Return(&redis_rate.Result{Allowed: 1}, nil)
	}, nil))

	t.Run("exhausted", allowRequest(5, func(m *scheduleprovider.MockRateLimiter) {
		m.On("Allow", mock.Anything, "limit:Upstream", redis_rate.PerSecond(5)).
			Return(&redis_rate.Result{Allowed: 0}, nil)
	}, ErrProviderRateLimitExceeded))

	t.Run("limiter_failure", func(t *testing.T) {
		boom := errors.New("redis down")
		m := scheduleprovider.NewMockRateLimiter(t)
		m.On("Allow", mock.Anything, "limit:Upstream", redis_rate.PerSecond(5)).Return(nil, boom)

		assert.ErrorIs(t, Allow(context.Background(), m, "Upstream", 5), boom)
	})

	t.Run("disabled_without_limit", allowRequest(0, func(*scheduleprovider.MockRateLimiter) {}, nil))

	t.Run("nil_limiter", func(t *testing.T) {
		assert.NoError(t, Allow(context.Background(), nil, "Upstream", 5))
	})
}
