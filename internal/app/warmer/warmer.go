package warmer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/logger"
	"github.com/robfig/cron/v3"
)

type TimetableService interface {
	GetWeeklyTimetable(ctx context.Context, req dto.TimetableRequest) (dto.TimetableResponse, error)
}

// Warmer renders the current and the next week on a cron schedule so the
// first request of a week is served from cache. It only fills missing
// entries; a cached week is refreshed once its entry expires.
type Warmer struct {
	Service TimetableService
	Hub     string
	Now     func() time.Time

	cron *cron.Cron
}

// New parses schedule, a standard five-field cron expression or a
// descriptor such as "@every 5m".
func New(service TimetableService, schedule string, hub string) (*Warmer, error) {
	w := &Warmer{
		Service: service,
		Hub:     hub,
		Now:     time.Now,
		cron:    cron.New(),
	}

	_, err := w.cron.AddFunc(schedule, func() {
		w.Warm(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("invalid warmer schedule %q: %w", schedule, err)
	}

	return w, nil
}

// Run warms once, then follows the schedule until ctx is done.
func (w *Warmer) Run(ctx context.Context) {
	w.Warm(ctx)

	w.cron.Start()
	slog.InfoContext(ctx, "timetable warmer started", slog.String("hub", w.Hub))

	<-ctx.Done()

	<-w.cron.Stop().Done()
	slog.InfoContext(ctx, "timetable warmer stopped")
}

// Warm renders the week containing today and the following week. It returns
// the number of weeks that failed.
func (w *Warmer) Warm(ctx context.Context) int {
	ctx = context.WithValue(ctx, logger.JobIDKey, uuid.New().String())
	today := w.Now()
	failed := 0

	for _, day := range []time.Time{today, today.AddDate(0, 0, 7)} {
		req := dto.TimetableRequest{Date: day.Format(time.DateOnly), Hub: w.Hub}

		timetable, err := w.Service.GetWeeklyTimetable(ctx, req)
		if err != nil {
			failed++
			slog.WarnContext(ctx, "failed to warm timetable", slog.String("date", req.Date),
				slog.String("error", err.Error()))
			continue
		}

		slog.DebugContext(ctx, "timetable warmed", slog.String("week_start", timetable.WeekStart),
			slog.Bool("cache_hit", timetable.Metadata.CacheHit))
	}

	return failed
}
