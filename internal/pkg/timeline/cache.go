package timeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// LayoutCache stores rendered layouts. Keys are derived only from what the
// layout depends on, so a stale entry can never describe different input.
type LayoutCache struct {
	redis RedisClient
}

func NewLayoutCache(redis RedisClient) *LayoutCache {
	return &LayoutCache{
		redis: redis,
	}
}

// any date of a week shares the entry of that week's Monday
func weekOf(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}

	offset := (int(t.Weekday()) + 6) % 7

	return t.AddDate(0, 0, -offset).Format(time.DateOnly)
}

func (c *LayoutCache) GetLockKey(req dto.TimetableRequest, tickMinutes int) string {
	return fmt.Sprintf("timetable:lock:%s:%s:%d", weekOf(req.Date), req.Hub, tickMinutes)
}

func (c *LayoutCache) GetCacheKey(req dto.TimetableRequest, tickMinutes int) string {
	return fmt.Sprintf("timetable:cache:%s:%s:%d", weekOf(req.Date), req.Hub, tickMinutes)
}

// GetLayoutKey hashes the submitted intervals, so identical payloads share an entry.
func (c *LayoutCache) GetLayoutKey(req dto.LayoutRequest, tickMinutes int) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal layout request: %w", err)
	}

	return fmt.Sprintf("timetable:layout:%d:%016x", tickMinutes, xxhash.Sum64(payload)), nil
}

func (c *LayoutCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *LayoutCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *LayoutCache) SetTimetable(ctx context.Context,
	key string,
	timetable dto.TimetableResponse,
	expiration time.Duration,
) error {
	data, err := json.Marshal(timetable)
	if err != nil {
		return fmt.Errorf("failed to marshal timetable: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set timetable: %w", err)
	}

	return nil
}

func (c *LayoutCache) GetTimetable(ctx context.Context, key string) (dto.TimetableResponse, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return dto.TimetableResponse{}, err
	}

	var timetable dto.TimetableResponse
	if err := json.Unmarshal(data, &timetable); err != nil {
		return dto.TimetableResponse{}, err
	}

	return timetable, nil
}

func (c *LayoutCache) SetAircraftTimetable(ctx context.Context,
	key string,
	timetable dto.AircraftTimetable,
	expiration time.Duration,
) error {
	data, err := json.Marshal(timetable)
	if err != nil {
		return fmt.Errorf("failed to marshal aircraft timetable: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set aircraft timetable: %w", err)
	}

	return nil
}

func (c *LayoutCache) GetAircraftTimetable(ctx context.Context, key string) (dto.AircraftTimetable, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return dto.AircraftTimetable{}, err
	}

	var timetable dto.AircraftTimetable
	if err := json.Unmarshal(data, &timetable); err != nil {
		return dto.AircraftTimetable{}, err
	}

	return timetable, nil
}
