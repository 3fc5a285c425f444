package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider/providerutils"
)

const ProviderName = "Snapshot"

// Provider serves a weekly gantt response stored on disk. The same file is
// returned for every date; an empty date skips the coverage check.
type Provider struct {
	Name string
	Path string
}

func NewProvider(config scheduleprovider.ScheduleProviderConfig) *Provider {
	return &Provider{
		Name: ProviderName,
		Path: strings.TrimPrefix(config.URL, "file://"),
	}
}

func (p *Provider) FetchWeek(ctx context.Context, date string) (dto.WeeklySchedule, error) {
	select {
	case <-ctx.Done():
		return dto.WeeklySchedule{}, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
	default:
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return dto.WeeklySchedule{}, providerutils.ErrProviderInternalError.WithCause(
			fmt.Errorf("failed to read snapshot file: %w", err))
	}

	var schedule dto.WeeklySchedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		return dto.WeeklySchedule{}, providerutils.ErrMalformedSchedule.WithCause(err)
	}

	if date != "" && !covers(schedule, date) {
		slog.WarnContext(ctx, "snapshot does not cover requested date", "date", date,
			"week_start", schedule.WeekStart, "week_end", schedule.WeekEnd)
	}

	return schedule, nil
}

func covers(schedule dto.WeeklySchedule, date string) bool {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return false
	}

	start, errStart := time.Parse(time.DateOnly, schedule.WeekStart)
	end, errEnd := time.Parse(time.DateOnly, schedule.WeekEnd)
	if errStart != nil || errEnd != nil {
		return false
	}

	return !d.Before(start) && !d.After(end)
}
