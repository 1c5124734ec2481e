package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"movie-review/db"
	"movie-review/models"
)

type AnalysisLogRepository struct {
	col *mongo.Collection
}

func NewAnalysisLogRepository(database *mongo.Database) *AnalysisLogRepository {
	return &AnalysisLogRepository{col: database.Collection(db.CollectionAnalysisLogs)}
}

func (r *AnalysisLogRepository) Insert(ctx context.Context, log models.AnalysisLog) (*mongo.InsertOneResult, error) {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	if log.CompletedAt.IsZero() {
		log.CompletedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}

// Record 는 services.AnalysisRecorder 를 만족시킨다.
func (r *AnalysisLogRepository) Record(ctx context.Context, log models.AnalysisLog) error {
	_, err := r.Insert(ctx, log)
	return err
}
