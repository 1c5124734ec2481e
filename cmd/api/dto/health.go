package dto

import "time"

type HealthEnvDTO struct {
	TMDBConfigured    bool `json:"tmdbConfigured"`
	YouTubeConfigured bool `json:"youtubeConfigured"`
}

// SentimentHealthDTO.Status 는 응답 코드(숫자) 또는 ECONNREFUSED / unreachable / ok / unknown 문자열이다.
type SentimentHealthDTO struct {
	OK       bool   `json:"ok"`
	Status   any    `json:"status" swaggertype:"string" example:"200"`
	Provider string `json:"provider" example:"http"`
}

type HealthResponseDTO struct {
	Service   string             `json:"service" example:"movie-review-backend"`
	Env       HealthEnvDTO       `json:"env"`
	Sentiment SentimentHealthDTO `json:"sentiment"`
	Timestamp time.Time          `json:"timestamp"`
}
