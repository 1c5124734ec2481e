package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalysisLog stores one /analyze run (system monitoring purpose)
// Collection: analysis_logs
type AnalysisLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID       string             `bson:"request_id" json:"request_id"`
	MovieID         int                `bson:"movie_id" json:"movie_id"`
	Title           string             `bson:"title,omitempty" json:"title,omitempty"`
	Source          string             `bson:"source,omitempty" json:"source,omitempty"`
	Provider        string             `bson:"provider" json:"provider"`
	TMDBReviews     int                `bson:"tmdb_reviews" json:"tmdb_reviews"`
	YouTubeComments int                `bson:"youtube_comments" json:"youtube_comments"`
	TotalReviews    int                `bson:"total_reviews" json:"total_reviews"`
	Summary         string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Positive        int                `bson:"positive" json:"positive"`
	Negative        int                `bson:"negative" json:"negative"`
	Neutral         int                `bson:"neutral" json:"neutral"`
	VideoID         string             `bson:"video_id,omitempty" json:"video_id,omitempty"`
	VideoError      *string            `bson:"video_error,omitempty" json:"video_error,omitempty"`
	ErrorMessage    *string            `bson:"error_message,omitempty" json:"error_message,omitempty"`
	DurationMs      int64              `bson:"duration_ms" json:"duration_ms"`
	RequestedAt     time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt     time.Time          `bson:"completed_at" json:"completed_at"`
}
