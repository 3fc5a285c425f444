package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider/providerutils"
)

const (
	ProviderName = "Upstream"
	ganttPath    = "schedule/gantt"
	maxBodyBytes = 8 << 20
)

// Provider calls the scheduling service's weekly gantt endpoint.
type Provider struct {
	Name         string
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      scheduleprovider.RateLimiter
	Backoff      time.Duration
	Client       *http.Client
}

func NewProvider(config scheduleprovider.ScheduleProviderConfig) *Provider {
	return &Provider{
		Name:         ProviderName,
		BaseURL:      config.URL,
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		RateLimitRPS: config.RateLimitRPS,
		Limiter:      config.Limiter,
		Backoff:      config.Backoff,
		Client:       &http.Client{},
	}
}

// FetchWeek calls GET {base}/schedule/gantt?date=. Server errors and transport
// failures are retried with exponential backoff; every attempt shares Timeout.
func (p *Provider) FetchWeek(ctx context.Context, date string) (dto.WeeklySchedule, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	endpoint, err := url.JoinPath(p.BaseURL, ganttPath)
	if err != nil {
		return dto.WeeklySchedule{}, fmt.Errorf("invalid schedule provider url: %w", err)
	}

	query := url.Values{"date": []string{date}}
	endpoint = endpoint + "?" + query.Encode()

	return providerutils.Retry(ctx, p.Name, p.MaxRetries, p.Backoff,
		func(ctx context.Context) (dto.WeeklySchedule, error) {
			if err := providerutils.Allow(ctx, p.Limiter, p.Name, p.RateLimitRPS); err != nil {
				return dto.WeeklySchedule{}, err
			}

			return p.fetchOnce(ctx, endpoint)
		})
}

func (p *Provider) fetchOnce(ctx context.Context, endpoint string) (dto.WeeklySchedule, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return dto.WeeklySchedule{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return dto.WeeklySchedule{}, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
		}
		return dto.WeeklySchedule{}, providerutils.ErrProviderInternalError.WithCause(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return dto.WeeklySchedule{}, providerutils.ErrProviderRateLimitExceeded
	case resp.StatusCode == http.StatusNotFound:
		return dto.WeeklySchedule{}, providerutils.ErrScheduleNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return dto.WeeklySchedule{}, providerutils.ErrProviderInternalError.WithCause(
			fmt.Errorf("status %d", resp.StatusCode))
	default:
		return dto.WeeklySchedule{}, providerutils.ErrMalformedSchedule.WithCause(
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var schedule dto.WeeklySchedule
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&schedule); err != nil {
		return dto.WeeklySchedule{}, providerutils.ErrMalformedSchedule.WithCause(err)
	}

	slog.DebugContext(ctx, "fetched weekly schedule", "provider", p.Name,
		"week_start", schedule.WeekStart, "aircraft", len(schedule.Aircraft))

	return schedule, nil
}
