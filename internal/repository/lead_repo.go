package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"envrt-site/internal/model"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	GetByID(ctx context.Context, id string) (*model.Lead, error)
	List(ctx context.Context, kind model.LeadKind, limit int64) ([]*model.Lead, error)
	CountByKind(ctx context.Context, kind model.LeadKind) (int64, error)
}

type leadRepository struct {
	collection *mongo.Collection
}

func NewLeadRepo(db *mongo.Database) LeadRepository {
	return &leadRepository{
		collection: db.Collection("leads"),
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) error {
	_, err := r.collection.InsertOne(ctx, lead)
	return err
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*model.Lead, error) {
	var lead model.Lead
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

// List returns leads newest first. An empty kind matches all flows.
func (r *leadRepository) List(ctx context.Context, kind model.LeadKind, limit int64) ([]*model.Lead, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}

	opts := options.Find().SetSort(bson.D{{Key: "capturedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []*model.Lead
	if err = cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) CountByKind(ctx context.Context, kind model.LeadKind) (int64, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}
	return r.collection.CountDocuments(ctx, filter)
}
