package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	MovieAnalyzed EventType = "movie.analyzed"
)

const eventVersion = "1"

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func NewBaseEvent(eventType EventType, source string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    source,
		Version:   eventVersion,
	}
}

// MovieAnalyzedEvent 영화 리뷰 감성 분석 완료 이벤트
type MovieAnalyzedEvent struct {
	BaseEvent
	RequestID       string  `json:"request_id"`
	MovieID         int     `json:"movie_id"`
	Title           string  `json:"title"`
	ContentSource   string  `json:"content_source"`
	TotalReviews    int     `json:"total_reviews"`
	Summary         string  `json:"summary"`
	Positive        int     `json:"positive"`
	Negative        int     `json:"negative"`
	Neutral         int     `json:"neutral"`
	PositivePercent float64 `json:"positive_percent"`
	NegativePercent float64 `json:"negative_percent"`
	NeutralPercent  float64 `json:"neutral_percent"`
	Provider        string  `json:"provider"`
	VideoID         string  `json:"video_id,omitempty"`
}
