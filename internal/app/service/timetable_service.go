package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/chart"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/exception"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/timeline"
)

type LayoutCacher interface {
	GetLockKey(req dto.TimetableRequest, tickMinutes int) string
	GetCacheKey(req dto.TimetableRequest, tickMinutes int) string
	GetLayoutKey(req dto.LayoutRequest, tickMinutes int) (string, error)
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetTimetable(ctx context.Context, key string) (dto.TimetableResponse, error)
	SetTimetable(ctx context.Context, key string, timetable dto.TimetableResponse,
		expiration time.Duration) error
	GetAircraftTimetable(ctx context.Context, key string) (dto.AircraftTimetable, error)
	SetAircraftTimetable(ctx context.Context, key string, timetable dto.AircraftTimetable,
		expiration time.Duration) error
}

type TimetableService struct {
	Provider        scheduleprovider.ScheduleProvider
	Cache           LayoutCacher
	Engine          *timeline.Engine
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

func NewTimetableService(provider scheduleprovider.ScheduleProvider, cache LayoutCacher,
	engine *timeline.Engine, cacheExpiration time.Duration,
	lockTimeout time.Duration) *TimetableService {
	return &TimetableService{
		Provider:        provider,
		Cache:           cache,
		Engine:          engine,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

// GetWeeklyTimetable lays out every aircraft for the week containing req.Date.
// GetWeeklyTimetable godoc
// @Summary      Weekly fleet timetable
// @Tags         Timetable
// @Description  Lay out one lane per weekday for every aircraft of the week containing date
// @Param        date  query     string  true   "Any date of the week (YYYY-MM-DD)"
// @Param        hub   query     string  false  "Hub airport code"
// @Success      200   {object}  dto.TimetableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/v1/timetable [get]
func (s *TimetableService) GetWeeklyTimetable(
	ctx context.Context,
	req dto.TimetableRequest,
) (dto.TimetableResponse, error) {
	startTime := time.Now()

	engine := s.Engine.WithHub(req.Hub)
	req.Hub = engine.Hub

	cacheKey := s.Cache.GetCacheKey(req, engine.TickMinutes)

	timetable, err := s.Cache.GetTimetable(ctx, cacheKey)
	if err == nil {
		timetable.Metadata.CacheHit = true
		timetable.Metadata.RenderTimeMs = int(time.Since(startTime).Milliseconds())
		return timetable, nil
	}
	slog.WarnContext(ctx, "failed to get timetable from cache", slog.String("error", err.Error()))

	schedule, err := s.Provider.FetchWeek(ctx, req.Date)
	if err != nil {
		return dto.TimetableResponse{}, fmt.Errorf("failed to fetch weekly schedule: %w",
			scheduleError(err))
	}

	timetable = engine.RenderWeek(schedule)

	// concurrent misses for the same week all render, only the lock holder writes
	s.storeTimetable(ctx, s.Cache.GetLockKey(req, engine.TickMinutes), cacheKey, timetable)

	timetable.Metadata.CacheHit = false
	timetable.Metadata.RenderTimeMs = int(time.Since(startTime).Milliseconds())

	return timetable, nil
}

func (s *TimetableService) storeTimetable(ctx context.Context, lockKey, cacheKey string,
	timetable dto.TimetableResponse) {
	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire lock", slog.String("error", err.Error()))
		return
	}

	if !acquired {
		return
	}
	defer func() {
		if err := s.Cache.ReleaseLock(ctx, lockKey); err != nil {
			slog.WarnContext(ctx, "failed to release lock", slog.String("error", err.Error()))
		}
	}()

	if err := s.Cache.SetTimetable(ctx, cacheKey, timetable, s.CacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to set timetable to cache", slog.String("error", err.Error()))
	}
}

// GetAircraftTimetable returns the lanes of one aircraft for the week containing req.Date.
// GetAircraftTimetable godoc
// @Summary      Aircraft timetable
// @Tags         Timetable
// @Param        aircraftID  path      int     true   "Aircraft id"
// @Param        date        query     string  true   "Any date of the week (YYYY-MM-DD)"
// @Param        hub         query     string  false  "Hub airport code"
// @Success      200         {object}  dto.AircraftTimetable
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/v1/timetable/aircraft/{aircraftID} [get]
func (s *TimetableService) GetAircraftTimetable(
	ctx context.Context,
	req dto.AircraftTimetableRequest,
) (dto.AircraftTimetable, error) {
	timetable, err := s.GetWeeklyTimetable(ctx, req.TimetableRequest)
	if err != nil {
		return dto.AircraftTimetable{}, err
	}

	for _, aircraft := range timetable.Aircraft {
		if aircraft.AircraftID == req.AircraftID {
			return aircraft, nil
		}
	}

	return dto.AircraftTimetable{}, ErrAircraftNotFound
}

// LayoutIntervals lays out caller supplied intervals. Results are cached by a
// hash of the request body.
// LayoutIntervals godoc
// @Summary      Lay out intervals
// @Tags         Timetable
// @Param        request  body      dto.LayoutRequest  true  "Intervals"
// @Success      200      {object}  dto.AircraftTimetable
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/timetable/layout [post]
func (s *TimetableService) LayoutIntervals(
	ctx context.Context,
	req dto.LayoutRequest,
) (dto.AircraftTimetable, error) {
	engine := s.Engine.WithHub(req.Hub)
	req.Hub = engine.Hub

	cacheKey, err := s.Cache.GetLayoutKey(req, engine.TickMinutes)
	if err != nil {
		slog.WarnContext(ctx, "failed to build layout cache key", slog.String("error", err.Error()))
	} else if timetable, err := s.Cache.GetAircraftTimetable(ctx, cacheKey); err == nil {
		return timetable, nil
	}

	timetable := engine.RenderAircraft(dto.AircraftWeek{
		AircraftID: req.AircraftID,
		Tail:       req.Tail,
		Bars:       req.Bars,
	})

	if cacheKey != "" {
		if err := s.Cache.SetAircraftTimetable(ctx, cacheKey, timetable, s.CacheExpiration); err != nil {
			slog.WarnContext(ctx, "failed to set layout to cache", slog.String("error", err.Error()))
		}
	}

	return timetable, nil
}

// ExportWeekPDF renders the weekly timetable as a PDF chart.
// ExportWeekPDF godoc
// @Summary      Weekly timetable PDF
// @Tags         Timetable
// @Produce      application/pdf
// @Param        date  query     string  true   "Any date of the week (YYYY-MM-DD)"
// @Param        hub   query     string  false  "Hub airport code"
// @Success      200
// @Router       /api/v1/timetable/pdf [get]
func (s *TimetableService) ExportWeekPDF(
	ctx context.Context,
	req dto.TimetableRequest,
) (dto.PDFDocument, error) {
	timetable, err := s.GetWeeklyTimetable(ctx, req)
	if err != nil {
		return dto.PDFDocument{}, err
	}

	var buf bytes.Buffer
	if err := chart.RenderPDF(&buf, timetable); err != nil {
		return dto.PDFDocument{}, fmt.Errorf("failed to render timetable pdf: %w", err)
	}

	return dto.PDFDocument{
		Filename: fmt.Sprintf("timetable-%s-%s.pdf", timetable.Hub, timetable.WeekStart),
		Content:  buf.Bytes(),
	}, nil
}

// scheduleError keeps provider errors that carry a client-facing status
// (rate limited, unknown week) and reports everything else as a bad gateway.
func scheduleError(err error) error {
	var appErr exception.ApplicationError
	if errors.As(err, &appErr) &&
		(appErr.StatusCode == http.StatusTooManyRequests || appErr.StatusCode == http.StatusNotFound) {
		return err
	}

	return ErrScheduleUnavailable.WithCause(err)
}
