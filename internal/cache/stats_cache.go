package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"envrt-site/internal/model"
)

// StatsCache handles Redis operations for daily beacon counters
type StatsCache interface {
	RecordEvent(ctx context.Context, ev *model.BeaconEvent) error
	GetDailySummary(ctx context.Context, day time.Time) (*model.DailySummary, error)
}

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
		ttl:    35 * 24 * time.Hour, // counters cover a rolling month
	}
}

func dayKey(day time.Time) string {
	return day.UTC().Format("2006-01-02")
}

func (c *statsCache) pageViewsKey(day string) string { return fmt.Sprintf("stats:%s:pv", day) }
func (c *statsCache) ctaKey(day string) string       { return fmt.Sprintf("stats:%s:cta", day) }
func (c *statsCache) devicesKey(day string) string   { return fmt.Sprintf("stats:%s:dev", day) }
func (c *statsCache) visitorsKey(day string) string  { return fmt.Sprintf("stats:%s:uv", day) }

// RecordEvent bumps the day's counters for the event. Counters are additive
// only; the event store in Mongo remains the source of truth.
func (c *statsCache) RecordEvent(ctx context.Context, ev *model.BeaconEvent) error {
	day := dayKey(ev.ReceivedAt)
	pipe := c.client.Pipeline()

	switch ev.Type {
	case model.EventPageView:
		pipe.HIncrBy(ctx, c.pageViewsKey(day), ev.Path, 1)
		pipe.Expire(ctx, c.pageViewsKey(day), c.ttl)
		if ev.DeviceType != "" {
			pipe.HIncrBy(ctx, c.devicesKey(day), ev.DeviceType, 1)
			pipe.Expire(ctx, c.devicesKey(day), c.ttl)
		}
		if ev.VisitorHash != "" {
			pipe.SAdd(ctx, c.visitorsKey(day), ev.VisitorHash)
			pipe.Expire(ctx, c.visitorsKey(day), c.ttl)
		}
	case model.EventCTA:
		pipe.HIncrBy(ctx, c.ctaKey(day), ev.CTA, 1)
		pipe.Expire(ctx, c.ctaKey(day), c.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (c *statsCache) GetDailySummary(ctx context.Context, day time.Time) (*model.DailySummary, error) {
	key := dayKey(day)

	pageViews, err := c.client.HGetAll(ctx, c.pageViewsKey(key)).Result()
	if err != nil {
		return nil, err
	}
	ctaClicks, err := c.client.HGetAll(ctx, c.ctaKey(key)).Result()
	if err != nil {
		return nil, err
	}
	devices, err := c.client.HGetAll(ctx, c.devicesKey(key)).Result()
	if err != nil {
		return nil, err
	}
	visitors, err := c.client.SCard(ctx, c.visitorsKey(key)).Result()
	if err != nil {
		return nil, err
	}

	return &model.DailySummary{
		Date:           key,
		PageViews:      toCounts(pageViews),
		CTAClicks:      toCounts(ctaClicks),
		Devices:        toCounts(devices),
		UniqueVisitors: visitors,
	}, nil
}

func toCounts(raw map[string]string) map[string]int64 {
	counts := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, _ := strconv.ParseInt(v, 10, 64)
		counts[k] = n
	}
	return counts
}
