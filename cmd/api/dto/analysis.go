package dto

import "movie-review/cmd/api/sentiment"

// LabeledReviewDTO 는 분류된 리뷰 또는 댓글 하나다.
type LabeledReviewDTO struct {
	Source     string          `json:"source" example:"tmdb" enums:"tmdb,youtube"`
	Author     string          `json:"author" example:"John Chard"`
	Content    string          `json:"content"`
	Sentiment  sentiment.Label `json:"sentiment" swaggertype:"string" enums:"positive,negative,neutral"`
	Confidence float64         `json:"confidence" example:"0.93"`
}

type YouTubeDiagnosticsDTO struct {
	VideoID string `json:"videoId,omitempty" example:"YoHD9XEInc0"`
	Query   string `json:"query,omitempty" example:"Inception official trailer"`
	Error   string `json:"error,omitempty"`
}

// AnalysisResponseDTO 는 /analyze/{movieId} 응답이다.
// 분석할 텍스트가 없으면 summary 는 "no data", stats 는 {} 이다.
type AnalysisResponseDTO struct {
	Source          string                `json:"source" example:"TMDB + YouTube"`
	MovieID         int                   `json:"movieId" example:"27205"`
	Title           string                `json:"title,omitempty" example:"Inception"`
	TotalReviews    int                   `json:"totalReviews" example:"10"`
	Summary         string                `json:"summary" example:"positive" enums:"positive,negative,neutral,mixed,no data"`
	Stats           any                   `json:"stats" swaggertype:"object"`
	Reviews         []LabeledReviewDTO    `json:"reviews"`
	TMDBReviews     []LabeledReviewDTO    `json:"tmdbReviews"`
	YouTubeComments []LabeledReviewDTO    `json:"youtubeComments"`
	YouTube         YouTubeDiagnosticsDTO `json:"youtube"`
}
