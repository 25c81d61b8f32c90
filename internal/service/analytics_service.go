package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"envrt-site/internal/cache"
	"envrt-site/internal/model"
	"envrt-site/internal/repository"
)

// Beacon ingest limits; anything past them is dropped silently, the beacon
// endpoint never tells the client what stuck.
const (
	maxBatchEvents = 50
	maxPathLen     = 512
)

var knownEventTypes = map[model.EventType]bool{
	model.EventPageView: true,
	model.EventSection:  true,
	model.EventCTA:      true,
	model.EventForm:     true,
	model.EventArticle:  true,
}

// AnalyticsService ingests beacon batches and serves the daily summary
type AnalyticsService struct {
	eventRepo  repository.EventRepository
	statsCache cache.StatsCache
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(eventRepo repository.EventRepository, statsCache cache.StatsCache) *AnalyticsService {
	return &AnalyticsService{
		eventRepo:  eventRepo,
		statsCache: statsCache,
	}
}

// Ingest sanitizes a beacon batch, stamps each event and records it. The
// batch is accepted as a whole; malformed events inside it are dropped.
func (s *AnalyticsService) Ingest(ctx context.Context, batch *model.BeaconBatch) {
	events := batch.Events
	if len(events) > maxBatchEvents {
		events = events[:maxBatchEvents]
	}

	now := time.Now().UTC()
	accepted := make([]*model.BeaconEvent, 0, len(events))
	for i := range events {
		ev := events[i]
		if !knownEventTypes[ev.Type] || ev.Path == "" || len(ev.Path) > maxPathLen {
			continue
		}
		ev.ID = uuid.New().String()
		ev.ReceivedAt = now
		accepted = append(accepted, &ev)
	}
	if len(accepted) == 0 {
		return
	}

	if err := s.eventRepo.InsertBatch(ctx, accepted); err != nil {
		log.Printf("[analytics] event store write failed: %v", err)
	}
	for _, ev := range accepted {
		if err := s.statsCache.RecordEvent(ctx, ev); err != nil {
			log.Printf("[analytics] counter bump failed: %v", err)
			break
		}
	}
}

// DailySummary returns the counter aggregates for one day
func (s *AnalyticsService) DailySummary(ctx context.Context, day time.Time) (*model.DailySummary, error) {
	return s.statsCache.GetDailySummary(ctx, day)
}
