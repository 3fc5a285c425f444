package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider/providerutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const weekBody = `{
	"weekStart": "2025-01-06",
	"weekEnd": "2025-01-12",
	"aircraft": [{
		"aircraftId": 3,
		"tail": "4R-ABC",
		"bars": [
			{"day": "WEDNESDAY", "startMinute": 480, "endMinute": 600, "label": "CMB → DXB", "tripId": 7, "color": "BLUE"},
			{"day": "WEDNESDAY", "startMinute": 660, "endMinute": 780, "label": "DXB → CMB", "tripId": "7", "color": "BLUE"}
		]
	}]
}`

func newProvider(url string, limiter scheduleprovider.RateLimiter) *Provider {
	return NewProvider(scheduleprovider.ScheduleProviderConfig{
		URL:          url,
		Timeout:      2 * time.Second,
		MaxRetries:   2,
		RateLimitRPS: 10,
		Limiter:      limiter,
		Backoff:      time.Millisecond,
	})
}

func TestProvider_FetchWeek(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/schedule/gantt", r.URL.Path)
			assert.Equal(t, "2025-01-08", r.URL.Query().Get("date"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(weekBody))
		}))
		defer srv.Close()

		got, err := newProvider(srv.URL+"/api", nil).FetchWeek(context.Background(), "2025-01-08")
		require.NoError(t, err)

		assert.Equal(t, "2025-01-06", got.WeekStart)
		require.Len(t, got.Aircraft, 1)
		require.Len(t, got.Aircraft[0].Bars, 2)

		first, ok := got.Aircraft[0].Bars[0].Trip()
		assert.True(t, ok)
		second, _ := got.Aircraft[0].Bars[1].Trip()
		assert.Equal(t, first, second)
	})

	t.Run("retries_server_errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(weekBody))
		}))
		defer srv.Close()

		got, err := newProvider(srv.URL, nil).FetchWeek(context.Background(), "2025-01-08")
		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
		assert.Len(t, got.Aircraft, 1)
	})

	t.Run("retry_exceeded", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newProvider(srv.URL, nil).FetchWeek(context.Background(), "2025-01-08")
		assert.ErrorIs(t, err, providerutils.ErrRetryExceeded)
		assert.Equal(t, int32(3), calls.Load())
	})

	statusRequest := func(status int, body string, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(status)
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newProvider(srv.URL, nil).FetchWeek(context.Background(), "2025-01-08")
			assert.ErrorIs(t, err, wantErr)
			assert.Equal(t, int32(1), calls.Load())
		}
	}

	t.Run("upstream_rate_limited", statusRequest(http.StatusTooManyRequests, "", providerutils.ErrProviderRateLimitExceeded))
	t.Run("week_not_found", statusRequest(http.StatusNotFound, "", providerutils.ErrScheduleNotFound))
	t.Run("bad_request", statusRequest(http.StatusBadRequest, "", providerutils.ErrMalformedSchedule))
	t.Run("malformed_body", statusRequest(http.StatusOK, "{not json", providerutils.ErrMalformedSchedule))

	t.Run("local_rate_limit_blocks_call", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("upstream must not be called when the local limit is exhausted")
		}))
		defer srv.Close()

		limiter := scheduleprovider.NewMockRateLimiter(t)
		limiter.On("Allow", mock.Anything, "limit:Upstream", redis_rate.PerSecond(10)).
			Return(&redis_rate.Result{Allowed: 0}, nil)

		_, err := newProvider(srv.URL, limiter).FetchWeek(context.Background(), "2025-01-08")
		assert.ErrorIs(t, err, providerutils.ErrProviderRateLimitExceeded)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer srv.Close()

		p := newProvider(srv.URL, nil)
		p.Timeout = 20 * time.Millisecond

		_, err := p.FetchWeek(context.Background(), "2025-01-08")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
