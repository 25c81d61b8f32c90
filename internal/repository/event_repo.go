package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"envrt-site/internal/model"
)

type EventRepository interface {
	InsertBatch(ctx context.Context, events []*model.BeaconEvent) error
	ListByDay(ctx context.Context, day time.Time, limit int64) ([]*model.BeaconEvent, error)
	CountByType(ctx context.Context, eventType model.EventType, since time.Time) (int64, error)
}

type eventRepository struct {
	collection *mongo.Collection
}

func NewEventRepo(db *mongo.Database) EventRepository {
	return &eventRepository{
		collection: db.Collection("events"),
	}
}

func (r *eventRepository) InsertBatch(ctx context.Context, events []*model.BeaconEvent) error {
	if len(events) == 0 {
		return nil
	}
	docs := make([]interface{}, len(events))
	for i, ev := range events {
		docs[i] = ev
	}
	// Unordered so one bad document doesn't drop the rest of the batch
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func (r *eventRepository) ListByDay(ctx context.Context, day time.Time, limit int64) ([]*model.BeaconEvent, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	filter := bson.M{"receivedAt": bson.M{"$gte": start, "$lt": end}}
	opts := options.Find().SetSort(bson.D{{Key: "receivedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*model.BeaconEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) CountByType(ctx context.Context, eventType model.EventType, since time.Time) (int64, error) {
	filter := bson.M{
		"type":       eventType,
		"receivedAt": bson.M{"$gte": since},
	}
	return r.collection.CountDocuments(ctx, filter)
}
