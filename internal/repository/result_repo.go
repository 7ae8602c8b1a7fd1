package repository

import (
	"context"
	"time"

	"teamsort/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepo handles MongoDB operations for completed interview reports.
type ResultRepo interface {
	Save(ctx context.Context, result *model.GameResult) error
	Recent(ctx context.Context, limit int64) ([]model.GameResult, error)
}

type resultRepo struct {
	results *mongo.Collection
}

// NewResultRepo creates a new result repository.
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		results: db.Collection("game_results"),
	}
}

func (r *resultRepo) Save(ctx context.Context, result *model.GameResult) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}
	_, err := r.results.InsertOne(ctx, result)
	return err
}

func (r *resultRepo) Recent(ctx context.Context, limit int64) ([]model.GameResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.results.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []model.GameResult
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
