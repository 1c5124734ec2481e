package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"movie-review/cmd/internal/logger"
	"movie-review/config"
)

const CollectionAnalysisLogs = "analysis_logs"

var ErrMongoNotConfigured = errors.New("mongo uri is not configured")

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
// mongo.uri 가 비어 있으면 ErrMongoNotConfigured 를 반환한다.
func Init(ctx context.Context, cfg config.MongoConfig) error {
	if cfg.URI == "" {
		return ErrMongoNotConfigured
	}
	dbName := cfg.Database
	if dbName == "" {
		dbName = "moviereview"
	}

	var initErr error
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			_ = cl.Disconnect(context.Background())
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.InfoWithFields("mongodb connected and indexes ensured", logger.Fields{"database": dbName})
	})
	return initErr
}

func Database() *mongo.Database { return db }

// Disconnect 는 Init 이 성공한 경우에만 연결을 닫는다.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// analysis_logs: movie_id + requested_at desc
	if _, err := d.Collection(CollectionAnalysisLogs).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "movie_id", Value: 1}, {Key: "requested_at", Value: -1}},
		Options: options.Index().SetName("idx_movie_requested_at"),
	}); err != nil {
		return err
	}
	// analysis_logs: request_id
	if _, err := d.Collection(CollectionAnalysisLogs).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "request_id", Value: 1}},
		Options: options.Index().SetName("idx_request_id"),
	}); err != nil {
		return err
	}
	return nil
}
