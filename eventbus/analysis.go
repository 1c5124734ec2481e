package eventbus

import (
	"context"

	"movie-review/events"
)

// AnalysisEventPublisher는 분석 완료 이벤트를 지정된 토픽으로 발행합니다.
type AnalysisEventPublisher struct {
	bus   Publisher
	topic Topic
}

func NewAnalysisEventPublisher(bus Publisher, topic Topic) *AnalysisEventPublisher {
	return &AnalysisEventPublisher{bus: bus, topic: topic}
}

func (p *AnalysisEventPublisher) PublishMovieAnalyzed(ctx context.Context, evt events.MovieAnalyzedEvent) error {
	e, err := NewJSONEvent(evt.ID, string(evt.Type), evt)
	if err != nil {
		return err
	}
	return p.bus.Publish(ctx, p.topic, e)
}
